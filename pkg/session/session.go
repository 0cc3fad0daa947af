// Package session provides server-side HTTP sessions keyed by an opaque
// identifier carried in a signed cookie.
//
// A session holds a denormalized identity snapshot taken at login time; it
// is never re-read from the credential store on later requests. The record
// lives in a pluggable Store (in-memory by default, Redis for multi-instance
// deployments); the cookie carries only the session ID, wrapped in an HS256
// JWT so a tampered cookie is rejected before any store lookup.
//
// Usage:
//
//	mgr := session.NewManager(session.NewMemoryStore(), session.DefaultOptions(secret, ttl))
//	r.Use(mgr.Middleware)
//
//	// login handler
//	mgr.Login(w, session.Identity{UserID: u.ID, Username: u.Username, Role: u.Role})
//
//	// anywhere downstream
//	ident := mgr.Current(r) // nil when anonymous
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"
)

// RoleAdmin is the privileged role value stored in identity snapshots.
const RoleAdmin = "admin"

// Identity is the snapshot of account fields stored in a session at login
// time. It is a copy, not a live reference: role changes in storage are not
// visible until the next login.
type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the snapshot holds the admin role.
func (id *Identity) IsAdmin() bool {
	return id != nil && id.Role == RoleAdmin
}

// Record is the server-side session state persisted in the Store.
type Record struct {
	Identity *Identity         `json:"identity,omitempty"`
	Flash    map[string]string `json:"flash,omitempty"`
}

// Options configures cookie and lifetime behaviour.
type Options struct {
	CookieName string
	Secret     string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns the defaults used by the application.
func DefaultOptions(secret string, ttl time.Duration) Options {
	return Options{
		CookieName: "portico_session",
		Secret:     secret,
		TTL:        ttl,
		HTTPOnly:   true,
		Secure:     false, // set true behind TLS
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

// Manager issues, reads and destroys sessions.
type Manager struct {
	store Store
	opts  Options
}

// NewManager creates a Manager over the given store.
func NewManager(store Store, opts Options) *Manager {
	return &Manager{store: store, opts: opts}
}

// newID generates a cryptographically random 32-byte hex session ID.
func newID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Login establishes a new session holding the identity snapshot and sets
// the signed cookie. The session is fully established or not at all: the
// cookie is only written after the record is stored. A fresh ID is issued
// on every login, never reusing a pre-login one.
func (m *Manager) Login(w http.ResponseWriter, ident Identity) error {
	sid, err := newID()
	if err != nil {
		return fmt.Errorf("session: generate id: %w", err)
	}

	rec := &Record{Identity: &ident}
	if err := m.store.Put(sid, rec, m.opts.TTL); err != nil {
		return fmt.Errorf("session: store: %w", err)
	}

	signed, err := signCookie(sid, m.opts.Secret, m.opts.TTL)
	if err != nil {
		// Roll back so no half-established session lingers.
		_ = m.store.Delete(sid)
		return fmt.Errorf("session: sign cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    signed,
		Path:     m.opts.Path,
		MaxAge:   int(m.opts.TTL.Seconds()),
		HttpOnly: m.opts.HTTPOnly,
		Secure:   m.opts.Secure,
		SameSite: m.opts.SameSite,
	})
	return nil
}

// Current returns the identity snapshot for the request's session, or nil
// when the request is anonymous (no cookie, bad signature, expired or
// destroyed session). It never queries the credential store.
func (m *Manager) Current(r *http.Request) *Identity {
	if ident, ok := r.Context().Value(ctxKey{}).(*Identity); ok {
		return ident
	}
	return m.resolve(r)
}

// resolve parses the cookie and loads the record from the store.
func (m *Manager) resolve(r *http.Request) *Identity {
	sid, ok := m.sessionID(r)
	if !ok {
		return nil
	}
	rec, ok := m.store.Get(sid)
	if !ok {
		return nil
	}
	return rec.Identity
}

// Logout destroys the whole session record (not just the identity) and
// expires the client cookie. A request with no session is a no-op.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	if sid, ok := m.sessionID(r); ok {
		_ = m.store.Delete(sid)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    "",
		Path:     m.opts.Path,
		MaxAge:   -1,
		HttpOnly: m.opts.HTTPOnly,
		Secure:   m.opts.Secure,
		SameSite: m.opts.SameSite,
	})
}

// Flash stores a one-shot value on the request's session.
func (m *Manager) Flash(r *http.Request, key, value string) error {
	sid, ok := m.sessionID(r)
	if !ok {
		return nil // anonymous: nowhere to store, silently skip
	}
	rec, ok := m.store.Get(sid)
	if !ok {
		return nil
	}
	if rec.Flash == nil {
		rec.Flash = map[string]string{}
	}
	rec.Flash[key] = value
	return m.store.Put(sid, rec, m.opts.TTL)
}

// PopFlash retrieves and removes a one-shot value.
func (m *Manager) PopFlash(r *http.Request, key string) (string, bool) {
	sid, ok := m.sessionID(r)
	if !ok {
		return "", false
	}
	rec, ok := m.store.Get(sid)
	if !ok || rec.Flash == nil {
		return "", false
	}
	v, ok := rec.Flash[key]
	if !ok {
		return "", false
	}
	delete(rec.Flash, key)
	_ = m.store.Put(sid, rec, m.opts.TTL)
	return v, true
}

// sessionID extracts and verifies the session ID from the request cookie.
func (m *Manager) sessionID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.opts.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	sid, err := parseCookie(cookie.Value, m.opts.Secret)
	if err != nil {
		return "", false
	}
	return sid, true
}

type ctxKey struct{}

// Middleware resolves the request's identity once and attaches it to the
// request context, so guards and handlers share a single store lookup.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := m.resolve(r)
		if ident != nil {
			ctx := context.WithValue(r.Context(), ctxKey{}, ident)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}
