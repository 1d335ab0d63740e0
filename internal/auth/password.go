package auth

import (
	"golang.org/x/crypto/bcrypt"

	"rentnest/server/internal/apperrors"
)

// HashPassword hashes a plaintext password with bcrypt at the given cost.
// A cost of 0 falls back to the bcrypt default.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", apperrors.Internal("failed to hash password", err)
	}
	return string(hashed), nil
}

// CheckPassword compares a stored bcrypt hash against a plaintext
// candidate. A mismatch is an Unauthorized error, not an internal one.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return apperrors.Unauthorized("invalid password")
	}
	return nil
}
