package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// SubmitGuard short-circuits replayed reservation form submissions (browser
// POST resubmits). Backed by Redis; a guard outage fails open.
type SubmitGuard interface {
	Seen(ctx context.Context, catwayNumber int, clientName string, checkIn time.Time) (bool, error)
	Mark(ctx context.Context, catwayNumber int, clientName string, checkIn time.Time) error
}

// ReservationService implements catway-scoped booking operations.
type ReservationService struct {
	reservations ports.ReservationRepository
	catways      ports.CatwayRepository
	guard        SubmitGuard
	log          zerolog.Logger
	now          func() time.Time
}

func NewReservationService(
	reservations ports.ReservationRepository,
	catways ports.CatwayRepository,
	guard SubmitGuard,
	log zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		catways:      catways,
		guard:        guard,
		log:          log,
		now:          time.Now,
	}
}

// Create books the referenced catway, copying its boat name onto the
// reservation. The catway read and the reservation insert are two separate
// store calls with no transaction between them.
func (s *ReservationService) Create(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	catway, err := s.catways.FindByID(ctx, input.CatwayID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	ve := &domain.ValidationError{}
	if l := runeLen(input.ClientName); l < 3 || l > 100 {
		ve.Fieldf("client_name", "client name must be between 3 and 100 characters")
	}
	if input.CheckIn.IsZero() || input.CheckOut.IsZero() {
		ve.Fieldf("check_in", "check-in and check-out dates are required")
	} else {
		if input.CheckIn.Before(now.Truncate(24 * time.Hour)) {
			ve.Fieldf("check_in", "check-in date cannot be in the past")
		}
		if !input.CheckOut.After(input.CheckIn) {
			ve.Fieldf("check_out", "check-out date must be after the check-in date")
		}
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	if s.guard != nil {
		seen, err := s.guard.Seen(ctx, catway.CatwayNumber, input.ClientName, input.CheckIn)
		if err != nil {
			s.log.Warn().Err(err).Int("catway_number", catway.CatwayNumber).Msg("submit guard check failed, processing anyway")
		} else if seen {
			return nil, &domain.DuplicateKeyError{Field: "reservation"}
		}
	}

	reservation := &domain.Reservation{
		CatwayNumber: catway.CatwayNumber,
		ClientName:   input.ClientName,
		BoatName:     catway.BoatName,
		CheckIn:      input.CheckIn,
		CheckOut:     input.CheckOut,
		CreatedAt:    now,
	}

	created, err := s.reservations.Create(ctx, reservation)
	if err != nil {
		return nil, err
	}

	if s.guard != nil {
		if err := s.guard.Mark(ctx, catway.CatwayNumber, input.ClientName, input.CheckIn); err != nil {
			s.log.Warn().Err(err).Int("catway_number", catway.CatwayNumber).Msg("failed to set submit guard key")
		}
	}

	s.log.Info().
		Int("catway_number", created.CatwayNumber).
		Str("client_name", created.ClientName).
		Msg("reservation created")

	return created, nil
}

// Get returns the reservation only when it references the given catway;
// a reservation reachable under the wrong catway is reported as not found.
func (s *ReservationService) Get(ctx context.Context, catwayID, reservationID string) (*domain.Reservation, error) {
	catway, err := s.catways.FindByID(ctx, catwayID)
	if err != nil {
		return nil, err
	}

	reservation, err := s.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.CatwayNumber != catway.CatwayNumber {
		return nil, domain.ErrReservationNotFound
	}
	return reservation, nil
}

func (s *ReservationService) ListForCatway(ctx context.Context, catwayID string) ([]*domain.Reservation, error) {
	catway, err := s.catways.FindByID(ctx, catwayID)
	if err != nil {
		return nil, err
	}
	return s.reservations.FindByCatwayNumber(ctx, catway.CatwayNumber)
}

func (s *ReservationService) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	return s.reservations.FindAll(ctx)
}

func (s *ReservationService) Delete(ctx context.Context, catwayID, reservationID string) error {
	if _, err := s.Get(ctx, catwayID, reservationID); err != nil {
		return err
	}
	if err := s.reservations.Delete(ctx, reservationID); err != nil {
		return err
	}
	s.log.Info().Str("reservation_id", reservationID).Msg("reservation deleted")
	return nil
}
