package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/core/ports"
)

// PageHandler serves the server-rendered pages: the public home page with the
// login form and the protected dashboard.
type PageHandler struct {
	reservations ports.ReservationService
}

func NewPageHandler(reservations ports.ReservationService) *PageHandler {
	return &PageHandler{reservations: reservations}
}

// Home renders the public landing page. It is the only page reachable
// without a session.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", map[string]any{})
}

// Dashboard renders the staff dashboard with the identity from the verified
// claim and the full reservation ledger.
func (h *PageHandler) Dashboard(c echo.Context) error {
	claim, err := ctxClaim(c)
	if err != nil {
		return err
	}

	reservations, err := h.reservations.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "dashboard", map[string]any{
		"User":         claim,
		"Reservations": reservations,
		"Today":        time.Now().Format("02/01/2006"),
	})
}
