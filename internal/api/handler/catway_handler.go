package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/core/ports"
)

// CatwayHandler handles CRUD over docking slots.
type CatwayHandler struct {
	service ports.CatwayService
}

func NewCatwayHandler(service ports.CatwayService) *CatwayHandler {
	return &CatwayHandler{service: service}
}

// Create registers a new catway.
//
// @Summary      Create a catway
// @Tags         catways
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      createCatwayRequest  true  "Catway details"
// @Success      201   {object}  domain.Catway
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /catways [post]
func (h *CatwayHandler) Create(c echo.Context) error {
	var req createCatwayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	catway, err := h.service.Create(c.Request().Context(), ports.CreateCatwayInput{
		CatwayNumber: req.CatwayNumber,
		Type:         req.Type,
		CatwayState:  req.CatwayState,
		BoatName:     req.BoatName,
	})
	if err != nil {
		return err
	}

	if WantsHTML(c) {
		return c.Redirect(http.StatusFound, "/catways")
	}
	return c.JSON(http.StatusCreated, catway)
}

// Get returns a single catway by identifier.
//
// @Summary      Get a catway
// @Tags         catways
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Catway id"
// @Success      200  {object}  domain.Catway
// @Failure      404  {object}  map[string]string
// @Router       /catways/{id} [get]
func (h *CatwayHandler) Get(c echo.Context) error {
	catway, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catway)
}

// List returns all catways, as the rendered page for browsers or JSON otherwise.
//
// @Summary      List catways
// @Tags         catways
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}  domain.Catway
// @Router       /catways [get]
func (h *CatwayHandler) List(c echo.Context) error {
	catways, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	if WantsHTML(c) && c.Echo().Renderer != nil {
		return c.Render(http.StatusOK, "catways", map[string]any{"Catways": catways})
	}
	return c.JSON(http.StatusOK, catways)
}

// Update mutates a catway's state description and assigned boat.
//
// @Summary      Update a catway
// @Tags         catways
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string               true  "Catway id"
// @Param        body  body      updateCatwayRequest  true  "Fields to change"
// @Success      200   {object}  domain.Catway
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /catways/{id} [put]
func (h *CatwayHandler) Update(c echo.Context) error {
	var req updateCatwayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	catway, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCatwayInput{
		CatwayState: req.CatwayState,
		BoatName:    req.BoatName,
	})
	if err != nil {
		return err
	}

	if WantsHTML(c) {
		return c.Redirect(http.StatusFound, "/catways")
	}
	return c.JSON(http.StatusOK, catway)
}

// Delete removes a catway by identifier. Reservations referencing its number
// are left in place; the linkage is by number, not by foreign key.
//
// @Summary      Delete a catway
// @Tags         catways
// @Security     CookieAuth
// @Param        id  path  string  true  "Catway id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /catways/{id} [delete]
func (h *CatwayHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	if WantsHTML(c) {
		return c.Redirect(http.StatusFound, "/catways")
	}
	return c.NoContent(http.StatusNoContent)
}
