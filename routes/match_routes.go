package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes wires the match engine endpoints
func RegisterMatchRoutes(r *mux.Router, matches *services.MatchService, tokens *services.TokenService) {
	controller := controllers.NewMatchController(matches)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(middleware.RequireAuth(tokens))
	matchRouter.HandleFunc("/find", controller.Find).Methods("GET")
	matchRouter.HandleFunc("/my", controller.My).Methods("GET")
}
