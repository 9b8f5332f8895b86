package chatauth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor used when no explicit
// cost is configured.
const DefaultHashCost = 10

// Hasher computes and verifies salted one-way password hashes.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a bcrypt hash of the plaintext. The salt is random per
// call, so hashing the same input twice yields different strings.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

// Verify reports whether the plaintext matches the hash, using the
// salt embedded in the hash string.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
