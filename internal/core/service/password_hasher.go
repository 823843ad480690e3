package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// BcryptHasher hashes passwords with bcrypt at the default cost. Each call
// salts independently, so the same input never hashes to the same output.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(out), nil
}

// Compare returns domain.ErrInvalidCredentials on a mismatch. Any other
// bcrypt error (corrupt hash, unsupported cost) is an internal failure and is
// wrapped, not converted, so callers can tell the two apart.
func (h *BcryptHasher) Compare(plain, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrInvalidCredentials
	}
	return fmt.Errorf("compare password: %w", err)
}
