package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes wires the notification endpoints
func RegisterNotificationRoutes(r *mux.Router, notifications *services.NotificationService, tokens *services.TokenService) {
	controller := controllers.NewNotificationController(notifications)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()
	notificationRouter.Use(middleware.RequireAuth(tokens))
	notificationRouter.HandleFunc("", controller.List).Methods("GET")
	notificationRouter.HandleFunc("/unread-count", controller.UnreadCount).Methods("GET")
	notificationRouter.HandleFunc("/read-all", controller.MarkAllRead).Methods("POST")
	notificationRouter.HandleFunc("/{id}/read", controller.MarkRead).Methods("POST")
}
