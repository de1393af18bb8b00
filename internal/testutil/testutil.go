// Package testutil holds helpers shared by HTTP-level tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"github.com/BHa01559102-bit/hexecutioners/internal/repositories"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
)

// NewRepo opens a migrated SQLite database under t.TempDir.
func NewRepo(t *testing.T) *repositories.Repository {
	t.Helper()
	db, err := repositories.ConnectDatabase(config.Config{
		DBDriver: config.DriverSQLite,
		DB_URL:   filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repositories.New(db)
}

// SessionCookie signs d the way the server would and returns the cookie.
func SessionCookie(t *testing.T, m *session.Manager, d session.Data) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := m.Save(rec, d); err != nil {
		t.Fatalf("save session: %v", err)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie written")
	return nil
}

// WithSession attaches a signed session cookie to r.
func WithSession(t *testing.T, m *session.Manager, r *http.Request, d session.Data) *http.Request {
	t.Helper()
	r.AddCookie(SessionCookie(t, m, d))
	return r
}

// SessionFrom decodes the session cookie set on a response, if any.
func SessionFrom(t *testing.T, m *session.Manager, rec *httptest.ResponseRecorder) session.Data {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	d, err := m.Load(req)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return d
}
