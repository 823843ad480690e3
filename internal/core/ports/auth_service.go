package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// AuthService implements the login flow: credential check plus token issuance.
type AuthService interface {
	// Login returns a signed session token and the matched user. Unknown
	// email and wrong password both yield domain.ErrInvalidCredentials so the
	// two cases are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenService issues and verifies signed, self-contained session tokens.
type TokenService interface {
	Issue(claim domain.Claim) (string, error)
	// Verify strips an optional case-insensitive "bearer " prefix, then
	// validates signature and expiry. Any failure yields domain.ErrInvalidToken.
	Verify(token string) (*domain.Claim, error)
}

// PasswordHasher is a one-way hash with per-call salt.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare returns domain.ErrInvalidCredentials on mismatch; any other
	// error is an internal hashing failure.
	Compare(plain, hash string) error
}
