package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
)

// MaxPasswordBytes is the longest password bcrypt will hash without truncating.
const MaxPasswordBytes = 72

// PasswordCost is the bcrypt work factor for stored user passwords.
var PasswordCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash stored on a password account.
// Empty or over-long passwords fail with ErrValidation.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is required", apperrors.ErrValidation)
	}
	if len(password) > MaxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", apperrors.ErrValidation, MaxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches a stored hash.
// Accounts created through Google sign-in have no hash and never match.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
