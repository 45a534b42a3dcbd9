package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// UserController handles profile reads and updates
type UserController struct {
	Users *services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// GetMe returns the caller's own profile
func (uc *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := uc.Users.GetUser(r.Context(), middleware.UserID(r))
	if err != nil {
		http.Error(w, `{"message": "User not found"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.PublicProfile())
}

// GetUser returns a public profile by id
func (uc *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	user, err := uc.Users.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			http.Error(w, `{"message": "User not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"message": "Failed to fetch user"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.PublicProfile())
}

// UpdateUser updates the caller's own profile fields
func (uc *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	if middleware.UserID(r) != userID {
		http.Error(w, `{"message": "You can only update your own profile"}`, http.StatusForbidden)
		return
	}

	var request struct {
		Name      *string `json:"name"`
		Bio       *string `json:"bio"`
		Location  *string `json:"location"`
		AvatarURL *string `json:"avatarUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updates := map[string]string{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Bio != nil {
		updates["bio"] = *request.Bio
	}
	if request.Location != nil {
		updates["location"] = *request.Location
	}
	if request.AvatarURL != nil {
		updates["avatarUrl"] = *request.AvatarURL
	}

	user, err := uc.Users.UpdateProfile(r.Context(), userID, updates)
	if err != nil {
		http.Error(w, `{"message": "Failed to update user"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.PublicProfile())
}
