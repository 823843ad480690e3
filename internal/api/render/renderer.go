// Package render implements echo.Renderer over html/template, with all views
// embedded in the binary.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed views/*.html
var viewsFS embed.FS

// Renderer serves the embedded view set. Templates are parsed once at
// construction; a bad template fails startup, not the first request.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	t, err := template.ParseFS(viewsFS, "views/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse views: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render satisfies echo.Renderer. The view name maps to <name>.html.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name+".html", data)
}
