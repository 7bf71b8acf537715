package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "hunter2" {
		t.Error("HashPassword() returned the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("HashPassword() does not look like a bcrypt hash: %s", hash)
	}

	// Same password should produce a different hash (random salt)
	hash2, _ := HashPassword("hunter2")
	if hash == hash2 {
		t.Error("HashPassword() produced identical hashes for the same input")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if err := CheckPassword(hash, "correct-horse"); err != nil {
		t.Errorf("CheckPassword() with right password = %v, want nil", err)
	}

	err = CheckPassword(hash, "battery-staple")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword() with wrong password = %v, want ErrInvalidCredentials", err)
	}

	err = CheckPassword("not-a-hash", "anything")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword() with garbage hash = %v, want ErrInvalidCredentials", err)
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := NewSessionToken("user-123", "me@example.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken() error = %v", err)
	}

	userID, email, err := ParseSessionToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseSessionToken() error = %v", err)
	}
	if userID != "user-123" {
		t.Errorf("ParseSessionToken() userID = %s, want user-123", userID)
	}
	if email != "me@example.com" {
		t.Errorf("ParseSessionToken() email = %s, want me@example.com", email)
	}
}

func TestParseSessionToken_Invalid(t *testing.T) {
	valid, _ := NewSessionToken("user-123", "me@example.com", "secret", time.Hour)
	expired, _ := NewSessionToken("user-123", "me@example.com", "secret", -time.Hour)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"expired token", expired, "secret"},
		{"malformed token", "not.a.jwt", "secret"},
		{"empty token", "", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseSessionToken(tt.token, tt.secret)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ParseSessionToken() = %v, want ErrInvalidToken", err)
			}
		})
	}
}
