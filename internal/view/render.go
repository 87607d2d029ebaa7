package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templates embed.FS

var funcs = template.FuncMap{
	"px": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
}

var page = template.Must(template.New("page.html").Funcs(funcs).ParseFS(templates, "templates/*.html"))

// Render writes the HTML of the page to w. Nothing is written if the
// template fails.
func Render(w io.Writer, p Page) error {
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "page.html", p); err != nil {
		return fmt.Errorf("could not render page: %w", err)
	}

	_, err := buf.WriteTo(w)
	return err
}
