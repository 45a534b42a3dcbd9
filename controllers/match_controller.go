package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/models"
	"skillswap_server/services"
)

// MatchController exposes the match engine over HTTP
type MatchController struct {
	Matches *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matches *services.MatchService) *MatchController {
	return &MatchController{Matches: matches}
}

// Find handles explicit skill-title/category match queries
func (mc *MatchController) Find(w http.ResponseWriter, r *http.Request) {
	query := models.MatchQuery{
		SkillTitle: r.URL.Query().Get("skillTitle"),
		Category:   r.URL.Query().Get("category"),
	}

	result, err := mc.Matches.FindMatchesForQuery(r.Context(), middleware.UserID(r), query)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuery) {
			http.Error(w, `{"message": "skillTitle or category is required"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"message": "Failed to compute matches"}`, http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// My computes matches from the caller's own wanted skills
func (mc *MatchController) My(w http.ResponseWriter, r *http.Request) {
	result, err := mc.Matches.FindMatchesForUser(r.Context(), middleware.UserID(r))
	if err != nil {
		http.Error(w, `{"message": "Failed to compute matches"}`, http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
