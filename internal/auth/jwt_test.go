package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerify(t *testing.T) {
	SetSecret("super-secret")

	tok, err := GenerateJWT(42, "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	parsed, err := VerifyJWT(tok)
	if err != nil {
		t.Fatalf("VerifyJWT error: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if got := uint(claims["user_id"].(float64)); got != 42 {
		t.Fatalf("user_id mismatch: got %d want 42", got)
	}
	if got := claims["email"]; got != "a@x.com" {
		t.Fatalf("email mismatch: got %q want %q", got, "a@x.com")
	}
}

func TestVerifyExpired(t *testing.T) {
	SetSecret("super-secret")

	tok, err := GenerateJWT(1, "a@x.com", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := VerifyJWT(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	SetSecret("right-secret")

	tok, err := GenerateJWT(1, "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	SetSecret("wrong-secret")

	if _, err := VerifyJWT(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerifyMalformed(t *testing.T) {
	SetSecret("k")

	if _, err := VerifyJWT("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
