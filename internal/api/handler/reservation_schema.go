package handler

import (
	"time"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// createReservationRequest carries dates as strings so the same schema binds
// JSON payloads (RFC 3339) and dashboard form posts (yyyy-mm-dd). The boat
// name is copied from the catway server-side and never accepted from the client.
type createReservationRequest struct {
	ClientName string `json:"client_name" form:"client_name" validate:"required,min=3,max=100"`
	CheckIn    string `json:"check_in"    form:"check_in"    validate:"required"`
	CheckOut   string `json:"check_out"   form:"check_out"   validate:"required"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidationError(field, field+" must be a valid date")
}
