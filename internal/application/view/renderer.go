package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	IndexPage   = "index.html"
	WeatherPage = "weather.html"
	ErrorPage   = "error.html"
)

// TemplateRenderer renders the embedded pages for echo's c.Render.
type TemplateRenderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*TemplateRenderer)(nil)

func NewTemplateRenderer() (*TemplateRenderer, error) {
	templates, err := template.New("pages").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: templates}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// IndexData feeds the city selection form.
type IndexData struct {
	Cities []string
	Action string
}
