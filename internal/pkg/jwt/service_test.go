package jwt

import (
	"errors"
	"testing"
	"time"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	s := newTestService()

	token, err := s.GenerateAccessToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("token type = %q", claims.TokenType)
	}
	if s.IsRefreshToken(claims) {
		t.Error("access token must not pass IsRefreshToken")
	}
}

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	s := newTestService()

	token, err := s.GenerateRefreshToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !s.IsRefreshToken(claims) {
		t.Error("refresh token must pass IsRefreshToken")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	s := newTestService()

	if _, err := s.ValidateToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	other := NewHMACService("different-access", "different-refresh", time.Minute, time.Minute)
	token, err := other.GenerateAccessToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := newTestService().ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenReportsExpiry(t *testing.T) {
	s := newTestService()
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	token, err := s.GenerateAccessToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	s.now = func() time.Time { return issued.Add(16 * time.Minute) }
	if _, err := s.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestGenerateFailsWithoutSecret(t *testing.T) {
	s := NewHMACService("", "refresh-secret", time.Minute, time.Minute)
	if _, err := s.GenerateAccessToken("admin@example.com"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
