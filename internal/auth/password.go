package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch indicates the plaintext does not match the stored digest.
var ErrPasswordMismatch = errors.New("password mismatch")

// bcryptCost matches the work factor used when the account table was seeded.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest safe for storage.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext against a stored digest. A malformed
// digest fails closed with ErrPasswordMismatch rather than skipping the check.
func VerifyPassword(plaintext, digest string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// dummyPasswordHash is compared when a login targets an unknown email so the
// response time does not reveal whether the account exists.
var dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8n4VWeNseyX2fA9DE.D7su7J6iYGTC"

// VerifyDummyPassword burns the same bcrypt cost as a real comparison.
func VerifyDummyPassword(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(plaintext))
}
