package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkormos/portico/pkg/session"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func setup(t *testing.T) (*session.Manager, func(role string) *http.Request) {
	t.Helper()

	m := session.NewManager(session.NewMemoryStore(), session.DefaultOptions("secret", time.Hour))

	asRole := func(role string) *http.Request {
		rec := httptest.NewRecorder()
		require.NoError(t, m.Login(rec, session.Identity{UserID: 1, Username: "someone", Role: role}))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(rec.Result().Cookies()[0])
		return r
	}
	return m, asRole
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	m, _ := setup(t)
	h := RequireAuth(m)(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthPassesAnyRole(t *testing.T) {
	m, asRole := setup(t)
	h := RequireAuth(m)(okHandler)

	for _, role := range []string{"user", "admin"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, asRole(role))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequireAdminForbidsAnonymous(t *testing.T) {
	m, _ := setup(t)
	h := RequireAdmin(m)(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestRequireAdminForbidsPlainUser(t *testing.T) {
	m, asRole := setup(t)
	h := RequireAdmin(m)(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asRole("user"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "do not have access")
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	m, asRole := setup(t)
	h := RequireAdmin(m)(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asRole("admin"))

	assert.Equal(t, http.StatusOK, rec.Code)
}
