package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// CatwayService implements CRUD over docking slots.
type CatwayService struct {
	repo ports.CatwayRepository
	log  zerolog.Logger
}

func NewCatwayService(repo ports.CatwayRepository, log zerolog.Logger) *CatwayService {
	return &CatwayService{repo: repo, log: log}
}

func (s *CatwayService) Create(ctx context.Context, input ports.CreateCatwayInput) (*domain.Catway, error) {
	ve := &domain.ValidationError{}
	if input.CatwayNumber <= 0 {
		ve.Fieldf("catway_number", "catway number must be a positive integer")
	}
	catwayType := domain.CatwayType(input.Type)
	if !catwayType.Valid() {
		ve.Fieldf("type", "type must be either %q or %q", domain.CatwayLong, domain.CatwayShort)
	}
	validateCatwayState(ve, input.CatwayState)
	validateBoatName(ve, input.BoatName)
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	catway := &domain.Catway{
		CatwayNumber: input.CatwayNumber,
		Type:         catwayType,
		CatwayState:  input.CatwayState,
		BoatName:     input.BoatName,
	}

	created, err := s.repo.Create(ctx, catway)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("catway_number", created.CatwayNumber).Msg("catway created")
	return created, nil
}

func (s *CatwayService) Get(ctx context.Context, id string) (*domain.Catway, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatwayService) List(ctx context.Context) ([]*domain.Catway, error) {
	return s.repo.FindAll(ctx)
}

// Update mutates the state description and the assigned boat. The catway
// number and type are fixed at creation.
func (s *CatwayService) Update(ctx context.Context, id string, input ports.UpdateCatwayInput) (*domain.Catway, error) {
	catway, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := &domain.ValidationError{}
	if input.CatwayState != "" {
		validateCatwayState(ve, input.CatwayState)
		catway.CatwayState = input.CatwayState
	}
	if input.BoatName != "" {
		validateBoatName(ve, input.BoatName)
		catway.BoatName = input.BoatName
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, catway)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("catway_number", updated.CatwayNumber).Msg("catway updated")
	return updated, nil
}

func (s *CatwayService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("catway_id", id).Msg("catway deleted")
	return nil
}

func validateCatwayState(ve *domain.ValidationError, state string) {
	if l := runeLen(state); l < 3 || l > 100 {
		ve.Fieldf("catway_state", "catway state must be between 3 and 100 characters")
	}
}

func validateBoatName(ve *domain.ValidationError, name string) {
	if l := runeLen(name); l < 2 || l > 50 {
		ve.Fieldf("boat_name", "boat name must be between 2 and 50 characters")
		return
	}
	if !containsLetter(name) {
		ve.Fieldf("boat_name", "boat name must contain at least one letter")
	}
}
