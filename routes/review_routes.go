package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterReviewRoutes wires the review endpoints
func RegisterReviewRoutes(r *mux.Router, reviews *services.ReviewService, tokens *services.TokenService) {
	controller := controllers.NewReviewController(reviews)

	reviewRouter := r.PathPrefix("/api/reviews").Subrouter()
	reviewRouter.Use(middleware.RequireAuth(tokens))
	reviewRouter.HandleFunc("", controller.Create).Methods("POST")
	reviewRouter.HandleFunc("/user/{userId}", controller.ListForUser).Methods("GET")
	reviewRouter.HandleFunc("/{id}", controller.Update).Methods("PUT")
	reviewRouter.HandleFunc("/{id}", controller.Delete).Methods("DELETE")
}
