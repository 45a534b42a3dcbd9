package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"skillswap_server/middleware"
	"skillswap_server/models"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RequestedSkillController handles the requested-skills CRUD surface
type RequestedSkillController struct {
	Skills *services.RequestedSkillService
	Cache  *services.CacheService
}

// NewRequestedSkillController creates a new RequestedSkillController instance
func NewRequestedSkillController(skills *services.RequestedSkillService, cache *services.CacheService) *RequestedSkillController {
	return &RequestedSkillController{Skills: skills, Cache: cache}
}

// List returns a filtered, paginated listing with version-scoped caching
func (rc *RequestedSkillController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := query.Get("q")
	userID := query.Get("userId")
	category := query.Get("category")
	page, limit := pageParams(r)

	version := rc.Cache.Version(services.RequestedVersionKey)
	cacheKey := services.ListCacheKey("requested:list", version,
		"q", q, "u", userID, "c", category, "p", strconv.Itoa(page), "l", strconv.Itoa(limit))

	w.Header().Set("Content-Type", "application/json")
	if cached := rc.Cache.Get(cacheKey); cached != "" {
		fmt.Fprint(w, cached)
		return
	}

	result, err := rc.Skills.ListRequested(r.Context(), q, userID, category, page, limit)
	if err != nil {
		http.Error(w, `{"message": "Failed to list requested skills"}`, http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		http.Error(w, `{"message": "Failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	rc.Cache.SetEx(cacheKey, 60, string(payload))
	w.Write(payload)
}

// Get returns a single requested skill
func (rc *RequestedSkillController) Get(w http.ResponseWriter, r *http.Request) {
	skill, err := rc.Skills.GetRequested(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			http.Error(w, `{"message": "Not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"message": "Failed to fetch skill"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(skill)
}

// Create stores a new requested skill owned by the caller
func (rc *RequestedSkillController) Create(w http.ResponseWriter, r *http.Request) {
	var skill models.RequestedSkill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if skill.Title == "" {
		http.Error(w, `{"message": "Title is required"}`, http.StatusBadRequest)
		return
	}
	skill.UserID = middleware.UserID(r)

	created, err := rc.Skills.CreateRequested(r.Context(), skill)
	if err != nil {
		http.Error(w, `{"message": "Failed to create skill"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// Update edits a skill the caller owns
func (rc *RequestedSkillController) Update(w http.ResponseWriter, r *http.Request) {
	var updates models.RequestedSkill
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	skill, err := rc.Skills.UpdateRequested(r.Context(), mux.Vars(r)["id"], middleware.UserID(r), updates)
	if err != nil {
		writeSkillError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(skill)
}

// Delete removes a skill the caller owns
func (rc *RequestedSkillController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := rc.Skills.DeleteRequested(r.Context(), mux.Vars(r)["id"], middleware.UserID(r)); err != nil {
		writeSkillError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Deleted"})
}
