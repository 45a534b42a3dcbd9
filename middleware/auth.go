package middleware

import (
	"context"
	"net/http"
	"strings"

	"skillswap_server/services"
)

type contextKey string

const userIDKey contextKey = "userId"

// RequireAuth validates the bearer token and stores the caller's user id in
// the request context. Requests without a valid token get a 401.
func RequireAuth(tokens *services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"message": "Missing bearer token"}`, http.StatusUnauthorized)
				return
			}
			userID, err := tokens.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, `{"message": "Invalid or expired token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated caller's user id, or "" when absent
func UserID(r *http.Request) string {
	if id, ok := r.Context().Value(userIDKey).(string); ok {
		return id
	}
	return ""
}
