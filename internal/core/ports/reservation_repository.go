package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// ReservationRepository defines persistence operations for bookings.
// Reservations are created and deleted, never updated in place.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	// FindByCatwayNumber lists bookings referencing the given catway number.
	FindByCatwayNumber(ctx context.Context, catwayNumber int) ([]*domain.Reservation, error)
	FindAll(ctx context.Context) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
}
