package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// WantsHTML reports whether the caller is browser-style and should receive
// rendered views and redirects instead of JSON. The decision sits at the
// transport boundary; no error-mapping or service code branches on it.
func WantsHTML(c echo.Context) bool {
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML) {
		return true
	}
	// Form posts come from rendered pages.
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm)
}
