package ports

import (
	"context"
	"time"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// CreateReservationInput books the catway identified by CatwayID. The boat
// name is copied from the catway; the client never supplies it.
type CreateReservationInput struct {
	CatwayID   string
	ClientName string
	CheckIn    time.Time
	CheckOut   time.Time
}

// ReservationService defines use-case operations for bookings. All operations
// are scoped to a catway, matching the nested route layout.
type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	// Get returns the reservation only if it belongs to the given catway.
	Get(ctx context.Context, catwayID, reservationID string) (*domain.Reservation, error)
	ListForCatway(ctx context.Context, catwayID string) ([]*domain.Reservation, error)
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	Delete(ctx context.Context, catwayID, reservationID string) error
}
