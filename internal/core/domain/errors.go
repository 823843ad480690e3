package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrMalformedID = errors.New("malformed identifier")

var ErrUserNotFound = errors.New("user not found")
var ErrCatwayNotFound = errors.New("catway not found")
var ErrReservationNotFound = errors.New("reservation not found")

// DuplicateKeyError reports a uniqueness violation on a single field.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return e.Field + " already exists"
}

// FieldMessage is one human-readable validation failure.
type FieldMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field validation failures. It is the single
// shape the error handler understands for 400 responses.
type ValidationError struct {
	Fields []FieldMessage
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(pairs ...string) *ValidationError {
	ve := &ValidationError{}
	for i := 0; i+1 < len(pairs); i += 2 {
		ve.Fields = append(ve.Fields, FieldMessage{Field: pairs[i], Message: pairs[i+1]})
	}
	return ve
}

// Fieldf appends a formatted failure and returns the error for chaining.
func (e *ValidationError) Fieldf(field, format string, args ...any) *ValidationError {
	e.Fields = append(e.Fields, FieldMessage{Field: field, Message: fmt.Sprintf(format, args...)})
	return e
}

// OrNil returns nil when no field failed.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
