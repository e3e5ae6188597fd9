package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("password123", bcrypt.MinCost)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "password123" {
		t.Error("hash must not equal the plain password")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash prefix, got %q", hash)
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("password123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("password123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := HashPassword("password123", bcrypt.MaxCost+1)

	if err == nil {
		t.Error("expected error for invalid cost, got nil")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !VerifyPassword("password123", hash) {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("expected wrong password to fail verification")
	}
	if VerifyPassword("password123", "not-a-bcrypt-hash") {
		t.Error("expected malformed hash to fail verification")
	}
}
