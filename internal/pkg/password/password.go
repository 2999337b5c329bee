package password

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// MinLength is the minimum accepted password length
	MinLength = 8
)

// Hash hashes a secret using bcrypt. Output differs per call (salted)
// while remaining verifiable. Used for both account passwords and
// reset-token secrets.
func Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a secret with a bcrypt hash. Returns false on any
// mismatch, never an error.
func Verify(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) bool {
	return len(password) >= MinLength
}
