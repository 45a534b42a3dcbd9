package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// MessageController handles direct messaging between connected users
type MessageController struct {
	Messages *services.MessageService
}

// NewMessageController creates a new MessageController instance
func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{Messages: messages}
}

// Send stores a message for a connected user
func (mc *MessageController) Send(w http.ResponseWriter, r *http.Request) {
	var request struct {
		RecipientID string `json:"recipientId"`
		Content     string `json:"content"`
		ExchangeID  string `json:"exchangeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.RecipientID == "" || request.Content == "" {
		http.Error(w, `{"message": "recipientId and content are required"}`, http.StatusBadRequest)
		return
	}

	message, err := mc.Messages.SendMessage(r.Context(), middleware.UserID(r), request.RecipientID, request.Content, request.ExchangeID)
	if err != nil {
		if errors.Is(err, services.ErrNotConnected) {
			http.Error(w, `{"message": "You can only message users with whom you have an accepted skill exchange"}`, http.StatusForbidden)
			return
		}
		http.Error(w, `{"message": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(message)
}

// Thread returns the conversation with another user, oldest first
func (mc *MessageController) Thread(w http.ResponseWriter, r *http.Request) {
	otherUserID := mux.Vars(r)["userId"]
	messages, err := mc.Messages.GetThread(r.Context(), middleware.UserID(r), otherUserID)
	if err != nil {
		http.Error(w, `{"message": "Failed to fetch thread"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"messages": messages})
}

// MarkRead stamps every unread message in the thread sent to the caller
func (mc *MessageController) MarkRead(w http.ResponseWriter, r *http.Request) {
	otherUserID := mux.Vars(r)["userId"]
	updated, err := mc.Messages.MarkThreadRead(r.Context(), middleware.UserID(r), otherUserID)
	if err != nil {
		http.Error(w, `{"message": "Failed to mark thread read"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"updated": updated})
}

// UnreadCount returns the caller's unread message count
func (mc *MessageController) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := mc.Messages.UnreadCount(r.Context(), middleware.UserID(r))
	if err != nil {
		http.Error(w, `{"message": "Failed to count unread messages"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"count": count})
}

// Connections lists the users the caller can message
func (mc *MessageController) Connections(w http.ResponseWriter, r *http.Request) {
	connections, err := mc.Messages.GetConnections(r.Context(), middleware.UserID(r))
	if err != nil {
		http.Error(w, `{"message": "Failed to list connections"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"connections": connections})
}
