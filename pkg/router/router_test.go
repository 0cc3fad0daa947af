package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestNamedRoutes(t *testing.T) {
	r := New()
	r.Get("/login", "auth.login.show", echo("login"))
	r.Post("/login", "auth.login", echo("do-login"))

	path, ok := r.Path("auth.login")
	require.True(t, ok)
	assert.Equal(t, "/login", path)

	_, ok = r.Path("missing")
	assert.False(t, ok)
}

func TestURLSubstitutesParams(t *testing.T) {
	r := New()
	r.Post("/crud/{id}/delete", "products.delete", echo("ok"))

	url, err := r.URL("products.delete", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/crud/7/delete", url)

	_, err = r.URL("products.delete", nil)
	assert.Error(t, err)
}

func TestParamExtraction(t *testing.T) {
	r := New()
	r.Get("/items/{id}", "items.show", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(Param(req, "id")))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, "42", rec.Body.String())
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	g := r.Group("/admin", tag("outer"))
	g.Get("/stats", "admin.stats", echo("stats"), tag("inner"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, "stats", rec.Body.String())
	assert.Equal(t, []string{"outer", "inner"}, order)

	path, ok := r.Path("admin.stats")
	require.True(t, ok)
	assert.Equal(t, "/admin/stats", path)
}

func TestRootGroupKeepsPaths(t *testing.T) {
	r := New()
	g := r.Group("/")
	g.Get("/admin", "admin.index", echo("admin"))

	path, ok := r.Path("admin.index")
	require.True(t, ok)
	assert.Equal(t, "/admin", path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutesSorted(t *testing.T) {
	r := New()
	r.Get("/b", "b", echo(""))
	r.Get("/a", "a", echo(""))
	r.Post("/a", "a.post", echo(""))

	infos := r.Routes()
	require.Len(t, infos, 3)
	assert.Equal(t, "/a", infos[0].Path)
	assert.Equal(t, "/a", infos[1].Path)
	assert.Equal(t, "/b", infos[2].Path)
}

func TestMethodMismatch(t *testing.T) {
	r := New()
	r.Get("/only-get", "g", echo("ok"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/only-get", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
