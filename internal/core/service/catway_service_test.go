package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

type stubCatwayRepo struct {
	byID   map[string]*domain.Catway
	nextID int
}

func newStubCatwayRepo() *stubCatwayRepo {
	return &stubCatwayRepo{byID: make(map[string]*domain.Catway)}
}

func (r *stubCatwayRepo) Create(_ context.Context, catway *domain.Catway) (*domain.Catway, error) {
	for _, existing := range r.byID {
		if existing.CatwayNumber == catway.CatwayNumber {
			return nil, &domain.DuplicateKeyError{Field: "catway_number"}
		}
	}
	r.nextID++
	clone := *catway
	clone.ID = fmt.Sprintf("catway-%d", r.nextID)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubCatwayRepo) FindByID(_ context.Context, id string) (*domain.Catway, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCatwayNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCatwayRepo) FindAll(_ context.Context) ([]*domain.Catway, error) {
	var out []*domain.Catway
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCatwayRepo) Update(_ context.Context, catway *domain.Catway) (*domain.Catway, error) {
	if _, ok := r.byID[catway.ID]; !ok {
		return nil, domain.ErrCatwayNotFound
	}
	clone := *catway
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubCatwayRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCatwayNotFound
	}
	delete(r.byID, id)
	return nil
}

func validCatwayInput() ports.CreateCatwayInput {
	return ports.CreateCatwayInput{
		CatwayNumber: 4,
		Type:         "long",
		CatwayState:  "good condition",
		BoatName:     "Orion",
	}
}

func TestCatwayService_Create_Success(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	catway, err := svc.Create(context.Background(), validCatwayInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if catway.CatwayNumber != 4 || catway.Type != domain.CatwayLong {
		t.Fatalf("unexpected catway: %+v", catway)
	}
}

func TestCatwayService_Create_BoatNameNeedsLetter(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	input := validCatwayInput()
	input.BoatName = "12345"

	_, err := svc.Create(context.Background(), input)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields[0].Field != "boat_name" {
		t.Fatalf("expected boat_name failure, got %+v", ve.Fields)
	}
}

func TestCatwayService_Create_Validation(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	cases := []struct {
		name   string
		mutate func(*ports.CreateCatwayInput)
	}{
		{"zero number", func(in *ports.CreateCatwayInput) { in.CatwayNumber = 0 }},
		{"bad type", func(in *ports.CreateCatwayInput) { in.Type = "medium" }},
		{"short state", func(in *ports.CreateCatwayInput) { in.CatwayState = "ok" }},
		{"short boat name", func(in *ports.CreateCatwayInput) { in.BoatName = "X" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCatwayInput()
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestCatwayService_Create_DuplicateNumber(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), validCatwayInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input := validCatwayInput()
	input.BoatName = "Pelican"
	_, err := svc.Create(context.Background(), input)
	var dup *domain.DuplicateKeyError
	if !errors.As(err, &dup) || dup.Field != "catway_number" {
		t.Fatalf("expected DuplicateKeyError on catway_number, got %v", err)
	}
}

func TestCatwayService_Update(t *testing.T) {
	repo := newStubCatwayRepo()
	svc := NewCatwayService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCatwayInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateCatwayInput{CatwayState: "needs repair"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.CatwayState != "needs repair" {
		t.Fatalf("state not updated: %+v", updated)
	}
	// Untouched fields keep their values.
	if updated.BoatName != "Orion" || updated.CatwayNumber != 4 {
		t.Fatalf("unexpected field overwrite: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateCatwayInput{CatwayState: "no"}); err == nil {
		t.Fatalf("expected validation error for short state")
	}
}

func TestCatwayService_Delete_NotFound(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrCatwayNotFound) {
		t.Fatalf("expected ErrCatwayNotFound, got %v", err)
	}
}
