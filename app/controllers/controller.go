// Package controllers holds the HTTP handlers. Each controller owns its
// dependencies explicitly; nothing reaches for ambient globals.
package controllers

import (
	"net/http"

	"github.com/bkormos/portico/pkg/session"
	"github.com/bkormos/portico/pkg/view"
)

// base carries what every controller needs: the renderer and the session
// manager. render injects the resolved identity so templates can show
// login/logout state on every page.
type base struct {
	views    *view.Engine
	sessions *session.Manager
}

func (b base) render(w http.ResponseWriter, r *http.Request, name string, data view.Data) {
	if data == nil {
		data = view.Data{}
	}
	data["CurrentUser"] = b.sessions.Current(r)
	b.views.Render(w, name, data)
}
