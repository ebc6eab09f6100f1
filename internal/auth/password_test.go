package auth

import (
	"errors"
	"testing"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("Hash must not equal the plaintext password")
	}

	if err := VerifyPassword(hash, "admin123"); err != nil {
		t.Errorf("VerifyPassword rejected the correct password: %v", err)
	}

	if err := VerifyPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	if err := VerifyPassword("not-a-bcrypt-hash", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for malformed hash, got %v", err)
	}
}
