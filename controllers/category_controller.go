package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/models"
)

// CategoryController serves the fixed category list
type CategoryController struct{}

// NewCategoryController creates a new CategoryController instance
func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// List returns the categories skills may be filed under
func (cc *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"categories": models.SkillCategories})
}
