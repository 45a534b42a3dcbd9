package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes wires the authentication endpoints
func RegisterAuthRoutes(r *mux.Router, users *services.UserService, tokens *services.TokenService) {
	controller := controllers.NewAuthController(users, tokens)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/register", controller.Register).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
	authRouter.HandleFunc("/refresh", controller.Refresh).Methods("POST")
	authRouter.HandleFunc("/logout", controller.Logout).Methods("POST")

	protected := r.PathPrefix("/api/auth").Subrouter()
	protected.Use(middleware.RequireAuth(tokens))
	protected.HandleFunc("/me", controller.Me).Methods("GET")
}
