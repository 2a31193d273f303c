package schema

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns raw secrets into stored hashes.
type Hasher interface {
	Hash(secret string) (string, error)
	// IsHashed reports whether s already carries the hash signature.
	IsHashed(s string) bool
}

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// BcryptHasher hashes with bcrypt at a fixed cost.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher clamps cost into bcrypt's accepted range.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Hash(secret string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(secret), h.Cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(out), nil
}

func (BcryptHasher) IsHashed(s string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// HashOnce hashes secret unless it is already a hash, so repeated runs never double hash.
func HashOnce(h Hasher, secret string) (string, error) {
	if h.IsHashed(secret) {
		return secret, nil
	}
	return h.Hash(secret)
}
