package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// ctxClaim extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty user_id proves the
// middleware ran and verified a token.
func ctxClaim(c echo.Context) (domain.Claim, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return domain.Claim{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	email, _ := c.Get("email").(string)
	return domain.Claim{UserID: userID, Name: name, Email: email}, nil
}
