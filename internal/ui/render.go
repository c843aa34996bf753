package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page template names.
const (
	PageHome     = "home"
	PageShop     = "shop"
	PageNotFound = "not_found"
)

var pageNames = []string{PageHome, PageShop, PageNotFound}

// NotFoundPage is the view model of the not-found page.
type NotFoundPage struct {
	Slug string
}

// Renderer executes page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"cn":   Cn,
	"card": CardClasses,
	"button": func(label, variant, kind, extra string) Button {
		return NewButton(label, ButtonVariant(variant), ButtonKind(kind), extra)
	},
}

// NewRenderer parses the embedded templates. Each page gets its own set so that the
// "title" and "content" blocks do not collide.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.tmpl",
			"templates/components.tmpl",
			"templates/"+name+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes page into a buffer so a failing template never yields a partial response.
func (r *Renderer) Render(page string, data any) ([]byte, error) {
	t, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", page, err)
	}
	return buf.Bytes(), nil
}
