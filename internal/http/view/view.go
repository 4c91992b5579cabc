package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"roster/internal/session"
)

const (
	Index      = "index"
	Login      = "login"
	Students   = "students"
	Edit       = "edit"
	CreateUser = "create_user"
	Error      = "error"
)

//go:embed templates/*.html
var templates embed.FS

// Page is the data every template receives.
type Page struct {
	Title    string
	Username string
	Flashes  []session.Flash
	Error    string
	Data     any
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	names := []string{Index, Login, Students, Edit, CreateUser, Error}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.ParseFS(templates, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	if err := tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	return nil
}
