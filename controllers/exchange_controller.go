package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/models"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// ExchangeController handles the exchange lifecycle endpoints
type ExchangeController struct {
	Exchanges *services.ExchangeService
}

// NewExchangeController creates a new ExchangeController instance
func NewExchangeController(exchanges *services.ExchangeService) *ExchangeController {
	return &ExchangeController{Exchanges: exchanges}
}

// Create proposes a new exchange
func (ec *ExchangeController) Create(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ProviderID       string `json:"providerId"`
		OfferedSkillID   string `json:"offeredSkillId"`
		RequestedSkillID string `json:"requestedSkillId"`
		ScheduledAt      string `json:"scheduledAt"`
		Notes            string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.ProviderID == "" && request.OfferedSkillID == "" && request.RequestedSkillID == "" {
		http.Error(w, `{"message": "At least one of providerId/offeredSkillId/requestedSkillId is required"}`, http.StatusBadRequest)
		return
	}

	exchange, err := ec.Exchanges.CreateExchange(r.Context(), middleware.UserID(r), models.Exchange{
		ProviderID:       request.ProviderID,
		OfferedSkillID:   request.OfferedSkillID,
		RequestedSkillID: request.RequestedSkillID,
		ScheduledAt:      request.ScheduledAt,
		Notes:            request.Notes,
	})
	if err != nil {
		http.Error(w, `{"message": "Failed to create exchange"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(exchange)
}

// List returns the caller's exchanges filtered by role and status
func (ec *ExchangeController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	role := query.Get("role")
	if role == "" {
		role = "all"
	}
	status := query.Get("status")
	page, limit := pageParams(r)

	result, err := ec.Exchanges.ListExchanges(r.Context(), middleware.UserID(r), role, status, page, limit)
	if err != nil {
		http.Error(w, `{"message": "Failed to list exchanges"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Get returns one exchange, participants only
func (ec *ExchangeController) Get(w http.ResponseWriter, r *http.Request) {
	exchange, err := ec.Exchanges.GetExchange(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, services.ErrExchangeNotFound) {
			http.Error(w, `{"message": "Not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"message": "Failed to fetch exchange"}`, http.StatusInternalServerError)
		return
	}
	if !exchange.IsParticipant(middleware.UserID(r)) {
		http.Error(w, `{"message": "Forbidden"}`, http.StatusForbidden)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(exchange)
}

// Update applies status/notes/schedule changes for a participant
func (ec *ExchangeController) Update(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Status      string `json:"status"`
		Notes       string `json:"notes"`
		ScheduledAt string `json:"scheduledAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	exchange, err := ec.Exchanges.UpdateExchange(r.Context(), mux.Vars(r)["id"], middleware.UserID(r), request.Status, request.Notes, request.ScheduledAt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExchangeNotFound):
			http.Error(w, `{"message": "Not found"}`, http.StatusNotFound)
		case errors.Is(err, services.ErrNotParticipant):
			http.Error(w, `{"message": "Forbidden"}`, http.StatusForbidden)
		default:
			http.Error(w, `{"message": "Failed to update exchange"}`, http.StatusBadRequest)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(exchange)
}
