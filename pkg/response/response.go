// Package response provides the small set of non-rendered HTTP replies the
// application uses: redirects and hard denials.
package response

import "net/http"

// Redirect sends a 302 to location.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusFound)
}

// Forbidden sends a hard 403 denial. No redirect: the caller is logged in
// but not allowed, which is deliberately distinct from "please log in".
func Forbidden(w http.ResponseWriter) {
	http.Error(w, "Forbidden: you do not have access to this page.", http.StatusForbidden)
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	http.Error(w, "Not found.", http.StatusNotFound)
}

// ServerError sends a 500.
func ServerError(w http.ResponseWriter) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
