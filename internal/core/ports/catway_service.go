package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// CreateCatwayInput carries the fields needed to register a docking slot.
type CreateCatwayInput struct {
	CatwayNumber int
	Type         string
	CatwayState  string
	BoatName     string
}

// UpdateCatwayInput carries the mutable catway fields. The catway number and
// type are fixed at creation; only the state description and the assigned
// boat can change. Empty fields are left untouched.
type UpdateCatwayInput struct {
	CatwayState string
	BoatName    string
}

// CatwayService defines use-case operations for docking slots.
type CatwayService interface {
	Create(ctx context.Context, input CreateCatwayInput) (*domain.Catway, error)
	Get(ctx context.Context, id string) (*domain.Catway, error)
	List(ctx context.Context) ([]*domain.Catway, error)
	Update(ctx context.Context, id string, input UpdateCatwayInput) (*domain.Catway, error)
	Delete(ctx context.Context, id string) error
}
