package services

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
	"github.com/sorawit/coursereg/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "coursereg-test",
	})
	svc, err := NewAuthService("admin", "admin123", jwtSvc, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token.AccessToken == "" || resp.Token.TokenType != "Bearer" {
		t.Fatalf("token %+v", resp.Token)
	}
	if resp.Username != "admin" || resp.Role != "admin" {
		t.Errorf("identity %+v", resp)
	}

	// The issued token round-trips through validation.
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "coursereg-test"})
	claims, err := jwtSvc.ValidateAndExtractClaims(resp.Token.AccessToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)

	for _, tc := range []struct{ username, password string }{
		{"admin", "wrong"},
		{"root", "admin123"},
		{"", ""},
	} {
		if _, err := svc.Login(tc.username, tc.password); !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("login(%q, %q): %v", tc.username, tc.password, err)
		}
	}
}
