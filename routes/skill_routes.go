package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterOfferedSkillRoutes wires the offered-skills CRUD endpoints
func RegisterOfferedSkillRoutes(r *mux.Router, skills *services.OfferedSkillService, cache *services.CacheService, tokens *services.TokenService) {
	controller := controllers.NewOfferedSkillController(skills, cache)

	skillRouter := r.PathPrefix("/api/offered-skills").Subrouter()
	skillRouter.HandleFunc("", controller.List).Methods("GET")
	skillRouter.HandleFunc("/{id}", controller.Get).Methods("GET")

	protected := r.PathPrefix("/api/offered-skills").Subrouter()
	protected.Use(middleware.RequireAuth(tokens))
	protected.HandleFunc("", controller.Create).Methods("POST")
	protected.HandleFunc("/{id}", controller.Update).Methods("PUT")
	protected.HandleFunc("/{id}", controller.Delete).Methods("DELETE")
}

// RegisterRequestedSkillRoutes wires the requested-skills CRUD endpoints
func RegisterRequestedSkillRoutes(r *mux.Router, skills *services.RequestedSkillService, cache *services.CacheService, tokens *services.TokenService) {
	controller := controllers.NewRequestedSkillController(skills, cache)

	skillRouter := r.PathPrefix("/api/requested-skills").Subrouter()
	skillRouter.HandleFunc("", controller.List).Methods("GET")
	skillRouter.HandleFunc("/{id}", controller.Get).Methods("GET")

	protected := r.PathPrefix("/api/requested-skills").Subrouter()
	protected.Use(middleware.RequireAuth(tokens))
	protected.HandleFunc("", controller.Create).Methods("POST")
	protected.HandleFunc("/{id}", controller.Update).Methods("PUT")
	protected.HandleFunc("/{id}", controller.Delete).Methods("DELETE")
}
