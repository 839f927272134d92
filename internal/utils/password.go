package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by VerifyPassword when the supplied
// password does not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword hashes a plain-text password with bcrypt at the given cost.
// A cost of zero selects bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword compares a plain-text password against a stored bcrypt
// hash. Returns ErrPasswordMismatch on mismatch, or a wrapped error if the
// stored hash is malformed.
func VerifyPassword(password, hashedPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("error verifying password: %w", err)
	}

	return nil
}
