package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/api/handler"
	"github.com/port-russell/marina-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string                `json:"error"`
	Details []domain.FieldMessage `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns the single error-to-response mapping applied to
// every route:
//   - Known domain outcomes map to deterministic HTTP status codes.
//   - Unexpected errors are logged with full detail and rendered as a
//     generic 500 — store internals never reach the client.
//   - Browser-style callers get the rendered error view; everyone else gets
//     the JSON envelope {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, details := resolveError(err, log, c)

		if handler.WantsHTML(c) && c.Echo().Renderer != nil {
			data := map[string]any{"Code": code, "Message": msg, "Details": details}
			if rerr := c.Render(code, "error", data); rerr == nil {
				return
			}
		}
		_ = c.JSON(code, errorResponse{Error: msg, Details: details})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []domain.FieldMessage) {
	// Echo's own errors (bind failures, 404 from router, middleware 401s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "validation failed", ve.Fields
	}

	var dup *domain.DuplicateKeyError
	if errors.As(err, &dup) {
		return http.StatusBadRequest, "this value already exists", []domain.FieldMessage{
			{Field: dup.Field, Message: dup.Error()},
		}
	}

	switch {
	case errors.Is(err, domain.ErrMalformedID):
		return http.StatusBadRequest, "please enter a valid identifier", nil
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCatwayNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password", nil
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token", nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", nil
}
