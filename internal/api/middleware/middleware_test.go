package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	chimw "github.com/go-chi/chi/v5/middleware"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

func withSession(r *http.Request, d session.Data) *http.Request {
	return r.WithContext(session.NewContext(r.Context(), d))
}

func TestRequireUser(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireUser(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Errorf("expected redirect to /login, got %d %s", rec.Code, rec.Header().Get("Location"))
	}

	rec = httptest.NewRecorder()
	RequireUser(ok).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/profile", nil), session.Data{UserID: 1}))
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected pass-through, got %d", rec.Code)
	}
}

func TestRequireUserJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireUserJSON(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/save-score", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestLoggerRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := chimw.RequestID(Logger(ok))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	out := buf.String()
	if !strings.Contains(out, "status=418") || !strings.Contains(out, "path=/health") || !strings.Contains(out, "request_id=") {
		t.Errorf("unexpected log line %q", out)
	}
}
