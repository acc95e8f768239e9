// Package view renders catalog pages to HTML.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Lixing-Zhang/top-rated-catalog/internal/catalog"
	"github.com/Lixing-Zhang/top-rated-catalog/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is the template model for the "page" layout
type pageData struct {
	Meta     catalog.Meta
	Heading  string
	Buttons  []catalog.CategoryButton
	Products []models.Product
}

// Renderer executes the embedded page templates. Templates are parsed
// once; a Renderer is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	funcMap := template.FuncMap{
		"price":  FormatPrice,
		"rating": FormatRating,
	}

	tmpl, err := template.New("_root").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full HTML document for page. Output is buffered so a
// template failure never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page *catalog.Page) error {
	data := pageData{
		Meta:     page.Meta(),
		Heading:  catalog.Heading,
		Buttons:  page.CategoryButtons(),
		Products: page.Filtered(),
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

// FormatPrice formats a USD amount, e.g. $129.99
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatRating formats a rating with one decimal, e.g. 4.9
func FormatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}
