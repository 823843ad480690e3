package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// CatwayRepository defines persistence operations for docking slots.
// The store enforces catway number uniqueness.
type CatwayRepository interface {
	Create(ctx context.Context, catway *domain.Catway) (*domain.Catway, error)
	FindByID(ctx context.Context, id string) (*domain.Catway, error)
	FindAll(ctx context.Context) ([]*domain.Catway, error)
	Update(ctx context.Context, catway *domain.Catway) (*domain.Catway, error)
	Delete(ctx context.Context, id string) error
}
