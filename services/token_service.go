package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers expired, malformed and revoked tokens
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and validates access and refresh JWTs. Refresh tokens
// carry the user's tokenVersion so bumping it revokes everything outstanding.
type TokenService struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// NewTokenService reads secrets from the environment
func NewTokenService() *TokenService {
	return &TokenService{
		AccessSecret:  []byte(os.Getenv("JWT_SECRET")),
		RefreshSecret: []byte(os.Getenv("JWT_REFRESH_SECRET")),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    30 * 24 * time.Hour,
	}
}

type accessClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	UserID       string `json:"id"`
	TokenVersion int    `json:"tokenVersion"`
	jwt.RegisteredClaims
}

// SignAccessToken issues a short-lived bearer token for userID
func (ts *TokenService) SignAccessToken(userID string) (string, error) {
	claims := accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ts.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.AccessSecret)
}

// SignRefreshToken issues a refresh token bound to the user's tokenVersion
func (ts *TokenService) SignRefreshToken(userID string, tokenVersion int) (string, error) {
	claims := refreshClaims{
		UserID:       userID,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ts.RefreshTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.RefreshSecret)
}

// VerifyAccessToken returns the user id carried by a valid access token
func (ts *TokenService) VerifyAccessToken(tokenString string) (string, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.AccessSecret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// VerifyRefreshToken returns the user id and tokenVersion of a valid refresh token
func (ts *TokenService) VerifyRefreshToken(tokenString string) (string, int, error) {
	claims := &refreshClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.RefreshSecret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", 0, ErrInvalidToken
	}
	return claims.UserID, claims.TokenVersion, nil
}
