package services

import (
	"testing"
	"time"
)

func testTokenService() *TokenService {
	return &TokenService{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	ts := testTokenService()

	token, err := ts.SignAccessToken("user-1")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	userID, err := ts.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %s", userID)
	}
}

func TestRefreshTokenCarriesVersion(t *testing.T) {
	ts := testTokenService()

	token, err := ts.SignRefreshToken("user-1", 7)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	userID, version, err := ts.VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if userID != "user-1" || version != 7 {
		t.Fatalf("expected user-1/7, got %s/%d", userID, version)
	}
}

func TestAccessTokenRejectsRefreshSecret(t *testing.T) {
	ts := testTokenService()

	token, err := ts.SignRefreshToken("user-1", 0)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := ts.VerifyAccessToken(token); err == nil {
		t.Fatal("access verification accepted a refresh token")
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	ts := testTokenService()
	ts.AccessTTL = -time.Minute

	token, err := ts.SignAccessToken("user-1")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := ts.VerifyAccessToken(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	ts := testTokenService()
	if _, err := ts.VerifyAccessToken("not-a-token"); err == nil {
		t.Fatal("malformed token accepted")
	}
}
