package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterMessageRoutes wires the direct-messaging endpoints
func RegisterMessageRoutes(r *mux.Router, messages *services.MessageService, tokens *services.TokenService) {
	controller := controllers.NewMessageController(messages)

	messageRouter := r.PathPrefix("/api/messages").Subrouter()
	messageRouter.Use(middleware.RequireAuth(tokens))
	messageRouter.HandleFunc("", controller.Send).Methods("POST")
	messageRouter.HandleFunc("/unread-count", controller.UnreadCount).Methods("GET")
	messageRouter.HandleFunc("/connections", controller.Connections).Methods("GET")
	messageRouter.HandleFunc("/thread/{userId}", controller.Thread).Methods("GET")
	messageRouter.HandleFunc("/thread/{userId}/read", controller.MarkRead).Methods("POST")
}
