package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterExchangeRoutes wires the exchange lifecycle endpoints
func RegisterExchangeRoutes(r *mux.Router, exchanges *services.ExchangeService, tokens *services.TokenService) {
	controller := controllers.NewExchangeController(exchanges)

	exchangeRouter := r.PathPrefix("/api/exchanges").Subrouter()
	exchangeRouter.Use(middleware.RequireAuth(tokens))
	exchangeRouter.HandleFunc("", controller.Create).Methods("POST")
	exchangeRouter.HandleFunc("", controller.List).Methods("GET")
	exchangeRouter.HandleFunc("/{id}", controller.Get).Methods("GET")
	exchangeRouter.HandleFunc("/{id}", controller.Update).Methods("PATCH")
}
