package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes wires the profile endpoints
func RegisterUserRoutes(r *mux.Router, users *services.UserService, tokens *services.TokenService) {
	controller := controllers.NewUserController(users)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.Use(middleware.RequireAuth(tokens))
	userRouter.HandleFunc("/me", controller.GetMe).Methods("GET")
	userRouter.HandleFunc("/{id}", controller.GetUser).Methods("GET")
	userRouter.HandleFunc("/{id}", controller.UpdateUser).Methods("PUT")
}
