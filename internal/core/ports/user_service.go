package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// CreateUserInput carries the fields needed to create a staff account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput carries a partial overwrite. Empty fields are left
// untouched; the password is re-hashed only when supplied.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserService defines use-case operations for staff accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
