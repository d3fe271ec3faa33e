package util

import (
	"testing"
)

func TestHashPassword_AndVerifyPassword_OK(t *testing.T) {
	plain := "MyStrongPassword123!"

	hashed, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword err: %v", err)
	}
	if hashed == "" {
		t.Fatalf("expected non-empty hash")
	}
	if hashed == plain {
		t.Fatalf("hash should not equal plain password")
	}

	if err := VerifyPassword(plain, hashed); err != nil {
		t.Fatalf("VerifyPassword should succeed, got: %v", err)
	}
}

func TestVerifyPassword_WrongPassword_ReturnsError(t *testing.T) {
	hashed, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword err: %v", err)
	}

	if err := VerifyPassword("wrong-password", hashed); err == nil {
		t.Fatalf("expected error for wrong password, got nil")
	}
}

func TestVerifyPassword_InvalidHash_ReturnsError(t *testing.T) {
	if err := VerifyPassword("anything", "not-a-bcrypt-hash"); err == nil {
		t.Fatalf("expected error for invalid hash, got nil")
	}
}
