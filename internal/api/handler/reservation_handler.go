package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/api/metrics"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// ReservationHandler handles catway-scoped booking operations.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// Create books the catway in the path for the given client and dates.
//
// @Summary      Create a reservation for a catway
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                    true  "Catway id"
// @Param        body  body      createReservationRequest  true  "Reservation details"
// @Success      201   {object}  domain.Reservation
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /catways/{id}/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	checkIn, err := parseDate("check_in", req.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := parseDate("check_out", req.CheckOut)
	if err != nil {
		return err
	}

	reservation, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		CatwayID:   c.Param("id"),
		ClientName: req.ClientName,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		return err
	}
	metrics.ReservationsCreatedTotal.Inc()

	if WantsHTML(c) {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.JSON(http.StatusCreated, reservation)
}

// Get returns one reservation, scoped to the catway in the path.
//
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Security     CookieAuth
// @Param        id             path      string  true  "Catway id"
// @Param        idReservation  path      string  true  "Reservation id"
// @Success      200            {object}  domain.Reservation
// @Failure      404            {object}  map[string]string
// @Router       /catways/{id}/reservations/{idReservation} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	reservation, err := h.service.Get(c.Request().Context(), c.Param("id"), c.Param("idReservation"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservation)
}

// List returns the reservations referencing the catway in the path.
//
// @Summary      List reservations for a catway
// @Tags         reservations
// @Produce      json
// @Security     CookieAuth
// @Param        id   path     string  true  "Catway id"
// @Success      200  {array}  domain.Reservation
// @Failure      404  {object}  map[string]string
// @Router       /catways/{id}/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.service.ListForCatway(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if WantsHTML(c) && c.Echo().Renderer != nil {
		return c.Render(http.StatusOK, "reservations", map[string]any{"Reservations": reservations})
	}
	return c.JSON(http.StatusOK, reservations)
}

// Delete removes a reservation, scoped to the catway in the path.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Security     CookieAuth
// @Param        id             path  string  true  "Catway id"
// @Param        idReservation  path  string  true  "Reservation id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /catways/{id}/reservations/{idReservation} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), c.Param("idReservation")); err != nil {
		return err
	}

	if WantsHTML(c) {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.NoContent(http.StatusNoContent)
}
