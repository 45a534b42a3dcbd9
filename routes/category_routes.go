package routes

import (
	"skillswap_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterCategoryRoutes wires the category list endpoint
func RegisterCategoryRoutes(r *mux.Router) {
	controller := controllers.NewCategoryController()

	categoryRouter := r.PathPrefix("/api/categories").Subrouter()
	categoryRouter.HandleFunc("", controller.List).Methods("GET")
}
