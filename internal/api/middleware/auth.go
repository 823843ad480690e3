package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/api/metrics"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "authToken"

// Auth is the gate in front of every protected route. It pulls the session
// token from the authToken cookie (falling back to the Authorization header
// for API clients), verifies it, and injects the claim fields into the
// request context. A missing or invalid token terminates the request with
// 401; the downstream handler is invoked exactly once, and only on success.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if cookie, err := c.Cookie(CookieName); err == nil {
				raw = cookie.Value
			}
			if raw == "" {
				raw = c.Request().Header.Get(echo.HeaderAuthorization)
			}
			if raw == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claim, err := tokens.Verify(raw)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("user_id", claim.UserID)
			c.Set("name", claim.Name)
			c.Set("email", claim.Email)

			return next(c)
		}
	}
}
