package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// sessionClaims is the JWT payload: the user claim plus registered claims.
type sessionClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. The signing secret
// is injected at construction and never read from the environment at call
// time. The service is stateless and safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed token embedding claim with an absolute expiry
// ttl from now.
func (s *TokenService) Issue(claim domain.Claim) (string, error) {
	now := s.now().UTC()
	claims := sessionClaims{
		UserID: claim.UserID,
		Name:   claim.Name,
		Email:  claim.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates raw and returns the embedded claim. An optional
// case-insensitive "bearer " prefix is stripped first. Bad signature, wrong
// algorithm, malformed structure and elapsed expiry all collapse into
// domain.ErrInvalidToken; verification never fails open.
func (s *TokenService) Verify(raw string) (*domain.Claim, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}
	if raw == "" {
		return nil, domain.ErrInvalidToken
	}

	var claims sessionClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Claim{UserID: claims.UserID, Name: claims.Name, Email: claims.Email}, nil
}
