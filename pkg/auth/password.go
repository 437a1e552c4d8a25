package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the default work factor. It is low; deployments
// should raise it via configuration.
const DefaultBcryptCost = 5

// Passwords hashes and verifies passwords with bcrypt.
type Passwords struct {
	cost int
}

// NewPasswords creates a password hasher with the given bcrypt cost.
// A cost below bcrypt's minimum falls back to DefaultBcryptCost.
func NewPasswords(cost int) *Passwords {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}
	return &Passwords{cost: cost}
}

// Hash returns the salted bcrypt hash of a plaintext password.
func (p *Passwords) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (p *Passwords) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
