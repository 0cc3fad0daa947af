// Package guard provides the two route predicates gating protected pages.
//
// RequireAuth and RequireAdmin compose by ordering: admin-only routes need
// only the admin guard, since its failure condition includes the anonymous
// case.
package guard

import (
	"net/http"

	"github.com/bkormos/portico/pkg/response"
	"github.com/bkormos/portico/pkg/session"
)

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessions.Current(r) == nil {
				response.Redirect(w, r, "/login")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin denies anyone without the admin role with a hard 403,
// anonymous requests included. No redirect: "you are logged in but not
// allowed" is deliberately distinct from "please log in".
func RequireAdmin(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Current(r).IsAdmin() {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
