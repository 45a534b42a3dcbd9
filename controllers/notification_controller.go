package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// NotificationController handles the in-app notification endpoints
type NotificationController struct {
	Notifications *services.NotificationService
}

// NewNotificationController creates a new NotificationController instance
func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// List pages through the caller's notifications, newest first
func (nc *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unreadOnly") == "true"
	page, limit := pageParams(r)

	result, err := nc.Notifications.ListNotifications(r.Context(), middleware.UserID(r), unreadOnly, page, limit)
	if err != nil {
		http.Error(w, `{"message": "Failed to list notifications"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// UnreadCount returns the caller's unread notification count
func (nc *NotificationController) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := nc.Notifications.UnreadCount(r.Context(), middleware.UserID(r))
	if err != nil {
		http.Error(w, `{"message": "Failed to count notifications"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"count": count})
}

// MarkRead stamps one notification
func (nc *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	notification, err := nc.Notifications.MarkRead(r.Context(), middleware.UserID(r), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			http.Error(w, `{"message": "Not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"message": "Failed to mark notification read"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notification)
}

// MarkAllRead stamps every unread notification
func (nc *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	updated, err := nc.Notifications.MarkAllRead(r.Context(), middleware.UserID(r))
	if err != nil {
		http.Error(w, `{"message": "Failed to mark notifications read"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"updated": updated})
}
