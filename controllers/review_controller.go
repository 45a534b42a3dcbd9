package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/models"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// ReviewController handles review creation and the per-user review list
type ReviewController struct {
	Reviews *services.ReviewService
}

// NewReviewController creates a new ReviewController instance
func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// Create stores a review and refreshes the reviewee's rating
func (rc *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	var request struct {
		RevieweeID string `json:"revieweeId"`
		Rating     int    `json:"rating"`
		Comment    string `json:"comment"`
		Context    string `json:"context"`
		SkillID    string `json:"skillId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.RevieweeID == "" || request.Rating == 0 {
		http.Error(w, `{"message": "revieweeId and rating are required"}`, http.StatusBadRequest)
		return
	}

	review, err := rc.Reviews.CreateReview(r.Context(), middleware.UserID(r), models.Review{
		RevieweeID: request.RevieweeID,
		Rating:     request.Rating,
		Comment:    request.Comment,
		Context:    request.Context,
		SkillID:    request.SkillID,
	})
	if err != nil {
		if errors.Is(err, services.ErrSelfReview) {
			http.Error(w, `{"message": "You cannot review yourself"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"message": "Failed to create review"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

// ListForUser pages through the reviews a user has received
func (rc *ReviewController) ListForUser(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	result, err := rc.Reviews.ListUserReviews(r.Context(), mux.Vars(r)["userId"], page, limit)
	if err != nil {
		http.Error(w, `{"message": "Failed to list reviews"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Update lets the reviewer change rating or comment
func (rc *ReviewController) Update(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Rating  int     `json:"rating"`
		Comment *string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	review, err := rc.Reviews.UpdateReview(r.Context(), mux.Vars(r)["id"], middleware.UserID(r), request.Rating, request.Comment)
	if err != nil {
		writeReviewError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(review)
}

// Delete removes a review the caller authored
func (rc *ReviewController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := rc.Reviews.DeleteReview(r.Context(), mux.Vars(r)["id"], middleware.UserID(r)); err != nil {
		writeReviewError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Deleted"})
}

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrReviewNotFound):
		http.Error(w, `{"message": "Not found"}`, http.StatusNotFound)
	case errors.Is(err, services.ErrNotReviewer):
		http.Error(w, `{"message": "Forbidden"}`, http.StatusForbidden)
	default:
		http.Error(w, `{"message": "Failed to update review"}`, http.StatusInternalServerError)
	}
}
