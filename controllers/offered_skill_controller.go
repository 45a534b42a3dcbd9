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

// OfferedSkillController handles the offered-skills CRUD surface
type OfferedSkillController struct {
	Skills *services.OfferedSkillService
	Cache  *services.CacheService
}

// NewOfferedSkillController creates a new OfferedSkillController instance
func NewOfferedSkillController(skills *services.OfferedSkillService, cache *services.CacheService) *OfferedSkillController {
	return &OfferedSkillController{Skills: skills, Cache: cache}
}

func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return page, limit
}

// List returns a filtered, paginated listing. Pages are cached under a
// version-scoped key so writes invalidate every page at once.
func (oc *OfferedSkillController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := query.Get("q")
	userID := query.Get("userId")
	category := query.Get("category")
	page, limit := pageParams(r)

	version := oc.Cache.Version(services.OfferedVersionKey)
	cacheKey := services.ListCacheKey("offered:list", version,
		"q", q, "u", userID, "c", category, "p", strconv.Itoa(page), "l", strconv.Itoa(limit))

	w.Header().Set("Content-Type", "application/json")
	if cached := oc.Cache.Get(cacheKey); cached != "" {
		fmt.Fprint(w, cached)
		return
	}

	result, err := oc.Skills.ListOffered(r.Context(), q, userID, category, page, limit)
	if err != nil {
		http.Error(w, `{"message": "Failed to list offered skills"}`, http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		http.Error(w, `{"message": "Failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	oc.Cache.SetEx(cacheKey, 60, string(payload))
	w.Write(payload)
}

// Get returns a single offered skill
func (oc *OfferedSkillController) Get(w http.ResponseWriter, r *http.Request) {
	skill, err := oc.Skills.GetOffered(r.Context(), mux.Vars(r)["id"])
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

// Create stores a new offered skill owned by the caller
func (oc *OfferedSkillController) Create(w http.ResponseWriter, r *http.Request) {
	var skill models.OfferedSkill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if skill.Title == "" {
		http.Error(w, `{"message": "Title is required"}`, http.StatusBadRequest)
		return
	}
	skill.UserID = middleware.UserID(r)

	created, err := oc.Skills.CreateOffered(r.Context(), skill)
	if err != nil {
		http.Error(w, `{"message": "Failed to create skill"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// Update edits a skill the caller owns
func (oc *OfferedSkillController) Update(w http.ResponseWriter, r *http.Request) {
	var updates models.OfferedSkill
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	skill, err := oc.Skills.UpdateOffered(r.Context(), mux.Vars(r)["id"], middleware.UserID(r), updates)
	if err != nil {
		writeSkillError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(skill)
}

// Delete removes a skill the caller owns
func (oc *OfferedSkillController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := oc.Skills.DeleteOffered(r.Context(), mux.Vars(r)["id"], middleware.UserID(r)); err != nil {
		writeSkillError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Deleted"})
}

func writeSkillError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSkillNotFound):
		http.Error(w, `{"message": "Not found"}`, http.StatusNotFound)
	case errors.Is(err, services.ErrNotOwner):
		http.Error(w, `{"message": "Forbidden"}`, http.StatusForbidden)
	default:
		http.Error(w, `{"message": "Failed to update skill"}`, http.StatusInternalServerError)
	}
}
