package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasherRoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Fatalf("expected bcrypt cost 10 hash, got %q", hash)
	}

	ok, err := h.Verify("secret1", hash)
	if err != nil || !ok {
		t.Fatalf("expected password to verify, ok=%v err=%v", ok, err)
	}

	ok, err = h.Verify("secret2", hash)
	if err != nil {
		t.Fatalf("wrong password must not be an error: %v", err)
	}
	if ok {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestPasswordHasherUsesFreshSalt(t *testing.T) {
	h := NewPasswordHasher()
	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	if a == b {
		t.Fatalf("expected different hashes for the same password")
	}
	if cost, _ := bcrypt.Cost([]byte(a)); cost != PasswordCost {
		t.Fatalf("expected cost %d, got %d", PasswordCost, cost)
	}
}

func TestPasswordHasherMalformedHashIsAnError(t *testing.T) {
	h := NewPasswordHasher()

	ok, err := h.Verify("secret1", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatalf("expected error for malformed hash")
	}
	if ok {
		t.Fatalf("expected ok=false for malformed hash")
	}
}
