package utils

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("test-secret", 42, "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token")
	}
	if until := time.Until(tok.Exp); until < 55*time.Minute || until > time.Hour {
		t.Errorf("expiry %v not about an hour out", tok.Exp)
	}

	userID, role, err := ParseAccessToken("test-secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if userID != 42 || role != "ADMIN" {
		t.Errorf("parsed userID=%d role=%q", userID, role)
	}
}

func TestParseAccessTokenRejects(t *testing.T) {
	tok, err := NewAccessToken("test-secret", 7, "USER", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	t.Run("wrong secret", func(t *testing.T) {
		if _, _, err := ParseAccessToken("other-secret", tok.Token); err == nil {
			t.Fatal("token verified with the wrong secret")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, _, err := ParseAccessToken("test-secret", "not.a.jwt"); err == nil {
			t.Fatal("garbage token accepted")
		}
	})

	t.Run("expired", func(t *testing.T) {
		old, err := NewAccessToken("test-secret", 7, "USER", -time.Minute)
		if err != nil {
			t.Fatalf("NewAccessToken: %v", err)
		}
		if _, _, err := ParseAccessToken("test-secret", old.Token); err == nil {
			t.Fatal("expired token accepted")
		}
	})
}
