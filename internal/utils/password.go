package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt cost used when none is configured.
const DefaultPasswordHashCost = bcrypt.DefaultCost

const dummyPassword = "task-tracker-dummy-password"

// HashPassword returns the bcrypt hash of password using the given cost.
// Costs outside bcrypt's accepted range fall back to DefaultPasswordHashCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordHashCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// A malformed hash is treated as a mismatch.
func CheckPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false
	}
	return err == nil
}

// NewDummyPasswordHash returns a hash of a fixed password at the same cost
// HashPassword would use. Comparing against it for an unknown user costs
// as much as checking a real user's password.
func NewDummyPasswordHash(cost int) (string, error) {
	return HashPassword(dummyPassword, cost)
}

// CheckPasswordAgainstDummy runs a bcrypt comparison against dummyHash and
// always reports false.
func CheckPasswordAgainstDummy(dummyHash, password string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
	return false
}
