package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

func newUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, NewBcryptHasher(), zerolog.Nop())
}

func TestUserService_Create_Success(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret!",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret!" {
		t.Fatalf("password not hashed: %q", user.PasswordHash)
	}
	if err := NewBcryptHasher().Compare("s3cret!", user.PasswordHash); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	cases := []struct {
		name  string
		input ports.CreateUserInput
		field string
	}{
		{"numeric name", ports.CreateUserInput{Name: "1234", Email: "a@b.com", Password: "secret1"}, "name"},
		{"short name", ports.CreateUserInput{Name: "Al", Email: "a@b.com", Password: "secret1"}, "name"},
		{"bad email", ports.CreateUserInput{Name: "Alice", Email: "not-an-email", Password: "secret1"}, "email"},
		{"short password", ports.CreateUserInput{Name: "Alice", Email: "a@b.com", Password: "12345"}, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			found := false
			for _, f := range ve.Fields {
				if f.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected failure on field %q, got %+v", tc.field, ve.Fields)
			}
		})
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	input := ports.CreateUserInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret!"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input.Name = "Alicia"
	_, err := svc.Create(context.Background(), input)
	var dup *domain.DuplicateKeyError
	if !errors.As(err, &dup) || dup.Field != "email" {
		t.Fatalf("expected DuplicateKeyError on email, got %v", err)
	}
}

func TestUserService_Update_PartialOverwrite(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret!",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	originalHash := created.PasswordHash

	// Name-only update must not touch the stored hash.
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Name: "Alicia"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Alicia" || updated.Email != "alice@example.com" {
		t.Fatalf("unexpected result: %+v", updated)
	}
	if updated.PasswordHash != originalHash {
		t.Fatalf("password re-hashed without a new password")
	}

	// Supplying a password re-hashes.
	updated, err = svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Password: "newpass1"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == originalHash {
		t.Fatalf("password hash unchanged after password update")
	}
	if err := NewBcryptHasher().Compare("newpass1", updated.PasswordHash); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	_, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Name: "Ghost"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret!",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
