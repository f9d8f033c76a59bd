package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Issue("alice", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	identity, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if identity.Username != "alice" {
		t.Errorf("Verify() username = %q, want %q", identity.Username, "alice")
	}
	if identity.Email != "alice@example.com" {
		t.Errorf("Verify() email = %q, want %q", identity.Email, "alice@example.com")
	}
}

func TestManager_VerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").Issue("alice", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	if _, err := NewManager("secret-b").Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestManager_VerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Verify(token); err != ErrInvalidToken {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestManager_VerifyRejectsExpired(t *testing.T) {
	secret := "test-secret"

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: "alice",
		Email:    "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-4 * time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := NewManager(secret).Verify(signed); err != ErrInvalidToken {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestManager_VerifyRejectsMissingUsername(t *testing.T) {
	secret := "test-secret"

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := anonymous.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := NewManager(secret).Verify(signed); err != ErrInvalidToken {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}
