package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

const minPasswordLen = 6

// UserService implements CRUD over staff accounts.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, log: log}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	ve := &domain.ValidationError{}
	validateUserName(ve, input.Name)
	validateUserEmail(ve, input.Email)
	validateUserPassword(ve, input.Password)
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial overwrite: empty input fields keep their stored
// value, and the password is re-hashed only when one is supplied.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := &domain.ValidationError{}
	if input.Name != "" {
		validateUserName(ve, input.Name)
		user.Name = input.Name
	}
	if input.Email != "" {
		validateUserEmail(ve, input.Email)
		user.Email = input.Email
	}
	if input.Password != "" {
		validateUserPassword(ve, input.Password)
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func validateUserName(ve *domain.ValidationError, name string) {
	if !isAlphabetic(name) {
		ve.Fieldf("name", "name must contain only letters")
		return
	}
	if l := runeLen(name); l < 3 || l > 50 {
		ve.Fieldf("name", "name must be between 3 and 50 characters")
	}
}

func validateUserEmail(ve *domain.ValidationError, email string) {
	if !validEmail(email) {
		ve.Fieldf("email", "email must be a valid address")
	}
}

func validateUserPassword(ve *domain.ValidationError, password string) {
	if runeLen(password) < minPasswordLen {
		ve.Fieldf("password", "password must be at least %d characters", minPasswordLen)
	}
}
