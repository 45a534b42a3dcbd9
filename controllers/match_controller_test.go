package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillswap_server/middleware"
	"skillswap_server/models"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// stubMatchStore serves a fixed candidate catalogue for controller tests
type stubMatchStore struct {
	candidates []models.OfferedSkill
	failWith   error
}

func (s *stubMatchStore) FindOfferedSkills(ctx context.Context, filter services.SkillFilter) ([]models.OfferedSkill, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if filter.UserID != "" {
		return nil, nil
	}
	return s.candidates, nil
}

func (s *stubMatchStore) FindRequestedSkills(ctx context.Context, filter services.SkillFilter) ([]models.RequestedSkill, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return nil, nil
}

func (s *stubMatchStore) FindActiveExchangeBetween(ctx context.Context, userA, userB string) (*models.Exchange, error) {
	return nil, nil
}

func (s *stubMatchStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return &models.User{UserID: userID, Name: "Provider"}, nil
}

func matchTestRouter(store services.MatchStore) (*mux.Router, string) {
	tokens := &services.TokenService{
		AccessSecret:  []byte("test-secret"),
		RefreshSecret: []byte("test-refresh"),
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}
	controller := NewMatchController(&services.MatchService{Store: store})

	r := mux.NewRouter()
	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(middleware.RequireAuth(tokens))
	matchRouter.HandleFunc("/find", controller.Find).Methods("GET")
	matchRouter.HandleFunc("/my", controller.My).Methods("GET")

	token, _ := tokens.SignAccessToken("user-a")
	return r, token
}

func TestMatchFindRequiresQueryCriteria(t *testing.T) {
	r, token := matchTestRouter(&stubMatchStore{})

	req := httptest.NewRequest("GET", "/api/matches/find", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMatchFindRequiresAuth(t *testing.T) {
	r, _ := matchTestRouter(&stubMatchStore{})

	req := httptest.NewRequest("GET", "/api/matches/find?skillTitle=Guitar", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMatchFindReturnsRankedEnvelope(t *testing.T) {
	store := &stubMatchStore{
		candidates: []models.OfferedSkill{
			{SkillID: "s1", UserID: "user-b", Title: "Guitar Lessons"},
		},
	}
	r, token := matchTestRouter(store)

	req := httptest.NewRequest("GET", "/api/matches/find?skillTitle=Guitar", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body models.QueryMatchesResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.TotalMatches != 1 || len(body.Matches) != 1 {
		t.Fatalf("expected one match, got %+v", body)
	}
	if body.Matches[0].Provider.UserID != "user-b" {
		t.Fatalf("unexpected provider: %+v", body.Matches[0].Provider)
	}
}

func TestMatchFindReportsDependencyFailure(t *testing.T) {
	r, token := matchTestRouter(&stubMatchStore{failWith: errors.New("scan throttled")})

	req := httptest.NewRequest("GET", "/api/matches/find?category=Music", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestMatchMyWithoutWantsReturnsGuidance(t *testing.T) {
	r, token := matchTestRouter(&stubMatchStore{})

	req := httptest.NewRequest("GET", "/api/matches/my", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body models.MyMatchesResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Message == "" || body.TotalMatches != 0 {
		t.Fatalf("expected guidance message and no matches, got %+v", body)
	}
}
