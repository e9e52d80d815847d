package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
)

// Renderer produces an HTML document from a named template and its context
type Renderer interface {
	Render(name string, data map[string]any) ([]byte, error)
}

// TemplateRenderer renders html/template files parsed once at startup
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every *.html file at the root of fsys
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

// Render executes the named template into a buffer, so a failing template
// never writes a partial response
func (r *TemplateRenderer) Render(name string, data map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

var funcMap = template.FuncMap{
	// has reports whether key is present in the render context
	"has": func(data map[string]any, key string) bool {
		_, ok := data[key]
		return ok
	},
}
