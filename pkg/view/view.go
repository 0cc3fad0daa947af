// Package view renders HTML pages. It is a thin collaborator: it accepts a
// template name and a data context and writes the rendered page.
//
// Pages share a single layout; each page file defines a "content" block.
// The current identity is injected by the controllers under "CurrentUser"
// so the layout can show login/logout state.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/bkormos/portico/pkg/logger"
	"github.com/bkormos/portico/pkg/response"
)

// Data is the context handed to a template.
type Data map[string]interface{}

// Engine holds the parsed page templates.
type Engine struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

// New parses layout.html plus every page under pages/ from fsys.
// Each page gets its own template set so "content" blocks don't collide.
func New(fsys fs.FS) (*Engine, error) {
	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(fsys, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse layout: %w", err)
	}

	entries, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: glob pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(entries))
	for _, path := range entries {
		tmpl, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("view: clone layout: %w", err)
		}
		if _, err := tmpl.ParseFS(fsys, path); err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", path, err)
		}

		name := path[len("pages/") : len(path)-len(".html")]
		pages[name] = tmpl
	}

	return &Engine{pages: pages}, nil
}

// Render writes the named page with data. Render errors are logged and
// produce a 500; nothing partial is written to the client.
func (e *Engine) Render(w http.ResponseWriter, name string, data Data) {
	tmpl, ok := e.pages[name]
	if !ok {
		logger.Error("view: unknown template", "name", name)
		response.ServerError(w)
		return
	}
	if data == nil {
		data = Data{}
	}

	// Render to a buffer first so a template error can't leave a
	// half-written page behind a 200 status.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		logger.Error("view: render failed", "name", name, "error", err)
		response.ServerError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
