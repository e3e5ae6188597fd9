package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the bcrypt work factor used when hashing passwords.
// Fixed at 10 so that stored hashes remain comparable across deployments.
const DefaultBcryptCost = 10

// HashPassword derives a salted bcrypt hash from the given plain-text
// password. The salt is generated by bcrypt itself and embedded in the
// resulting hash string.
//
// cost must be a valid bcrypt work factor; pass DefaultBcryptCost unless a
// test needs a cheaper setting.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plain-text password matches the stored
// bcrypt hash. The comparison is constant-time inside bcrypt.
func VerifyPassword(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
