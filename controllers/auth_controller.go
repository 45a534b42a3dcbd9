package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"skillswap_server/middleware"
	"skillswap_server/services"
)

// The cookie path covers refresh and logout but keeps the token off every
// other route.
const refreshCookieName = "refresh_token"
const refreshCookiePath = "/api/auth"

// AuthController handles registration, login and token refresh
type AuthController struct {
	Users  *services.UserService
	Tokens *services.TokenService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(users *services.UserService, tokens *services.TokenService) *AuthController {
	return &AuthController{Users: users, Tokens: tokens}
}

func setRefreshCookie(w http.ResponseWriter, token string) {
	secure := strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true")
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     refreshCookiePath,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
	})
}

func (ac *AuthController) issueTokens(w http.ResponseWriter, userID string, tokenVersion int) (string, error) {
	access, err := ac.Tokens.SignAccessToken(userID)
	if err != nil {
		return "", err
	}
	refresh, err := ac.Tokens.SignRefreshToken(userID, tokenVersion)
	if err != nil {
		return "", err
	}
	setRefreshCookie(w, refresh)
	return access, nil
}

// Register creates a new account and signs the user in
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.Name == "" || request.Email == "" || request.Password == "" {
		http.Error(w, `{"message": "Name, email, and password are required"}`, http.StatusBadRequest)
		return
	}

	user, err := ac.Users.Register(r.Context(), request.Name, strings.ToLower(strings.TrimSpace(request.Email)), request.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailInUse) {
			http.Error(w, `{"message": "Email already in use"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"message": "Failed to register"}`, http.StatusInternalServerError)
		return
	}

	access, err := ac.issueTokens(w, user.UserID, user.TokenVersion)
	if err != nil {
		http.Error(w, `{"message": "Failed to issue tokens"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": access,
		"user":  user.PublicProfile(),
	})
}

// Login verifies credentials and signs the user in
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.Email == "" || request.Password == "" {
		http.Error(w, `{"message": "Email and password are required"}`, http.StatusBadRequest)
		return
	}

	user, err := ac.Users.Authenticate(r.Context(), strings.ToLower(strings.TrimSpace(request.Email)), request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			http.Error(w, `{"message": "Invalid credentials"}`, http.StatusUnauthorized)
			return
		}
		http.Error(w, `{"message": "Failed to log in"}`, http.StatusInternalServerError)
		return
	}

	access, err := ac.issueTokens(w, user.UserID, user.TokenVersion)
	if err != nil {
		http.Error(w, `{"message": "Failed to issue tokens"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": access,
		"user":  user.PublicProfile(),
	})
}

// Refresh rotates the refresh cookie and issues a new access token
func (ac *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		http.Error(w, `{"message": "No refresh token"}`, http.StatusUnauthorized)
		return
	}

	userID, tokenVersion, err := ac.Tokens.VerifyRefreshToken(cookie.Value)
	if err != nil {
		http.Error(w, `{"message": "Invalid refresh token"}`, http.StatusUnauthorized)
		return
	}

	user, err := ac.Users.GetUser(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"message": "Invalid refresh token"}`, http.StatusUnauthorized)
		return
	}
	if user.TokenVersion != tokenVersion {
		http.Error(w, `{"message": "Refresh token revoked"}`, http.StatusUnauthorized)
		return
	}

	access, err := ac.issueTokens(w, user.UserID, user.TokenVersion)
	if err != nil {
		http.Error(w, `{"message": "Failed to issue tokens"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": access})
}

// Logout clears the refresh cookie and revokes outstanding refresh tokens.
// The caller is identified by the refresh cookie, not the access token, so
// logging out works even after the access token expires.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		if cookie, err := r.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
			userID, _, _ = ac.Tokens.VerifyRefreshToken(cookie.Value)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:   refreshCookieName,
		Value:  "",
		Path:   refreshCookiePath,
		MaxAge: -1,
	})
	if userID != "" {
		if err := ac.Users.BumpTokenVersion(r.Context(), userID); err != nil {
			http.Error(w, `{"message": "Failed to log out"}`, http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}

// Me returns the authenticated user's profile
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, err := ac.Users.GetUser(r.Context(), middleware.UserID(r))
	if err != nil {
		http.Error(w, `{"message": "User not found"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"user": user.PublicProfile()})
}
