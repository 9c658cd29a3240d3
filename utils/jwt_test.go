package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	defer SetJWTSecret("")

	tok, err := GenerateToken("u1", "sara@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	id, err := ExtractIDFromToken(tok)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if id != "u1" {
		t.Fatalf("id = %q, want u1", id)
	}
}

func TestTokenRejected(t *testing.T) {
	SetJWTSecret("test-secret")
	defer SetJWTSecret("")

	expired, _ := GenerateToken("u1", "", -time.Minute)
	if _, err := ExtractIDFromToken(expired); err == nil {
		t.Fatalf("expired token accepted")
	}

	SetJWTSecret("other-secret")
	if _, err := ExtractIDFromToken(expired); err == nil {
		t.Fatalf("token signed with another secret accepted")
	}
	if _, err := ExtractIDFromToken("not-a-jwt"); err == nil {
		t.Fatalf("garbage accepted")
	}
}

func TestTokenRequiresSecret(t *testing.T) {
	SetJWTSecret("")
	if _, err := GenerateToken("u1", "", time.Hour); err == nil {
		t.Fatalf("expected an error without a secret")
	}
}
