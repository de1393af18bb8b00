package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BHa01559102-bit/hexecutioners/internal/api/handlers"
	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"github.com/BHa01559102-bit/hexecutioners/internal/predictor"
	"github.com/BHa01559102-bit/hexecutioners/internal/repositories"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"github.com/BHa01559102-bit/hexecutioners/internal/testutil"
	"github.com/BHa01559102-bit/hexecutioners/internal/web"
)

func newTestRouter(t *testing.T, origins ...string) (http.Handler, *session.Manager) {
	t.Helper()
	cfg := config.Config{MaxUploadBytes: 1 << 20, AllowedOrigins: origins}

	store, err := repositories.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	schema, err := predictor.DefaultSchema()
	if err != nil {
		t.Fatal(err)
	}
	views, err := web.NewRenderer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sessions := session.NewManager("router-secret", time.Hour, false)

	h := handlers.New(handlers.Deps{
		Config:    cfg,
		Repo:      testutil.NewRepo(t),
		Store:     store,
		Predictor: predictor.New(schema, nil, 70, 50),
		Schema:    schema,
		Sessions:  sessions,
		Views:     views,
	})
	return SetupRouter(h, sessions, cfg), sessions
}

func TestRoutes(t *testing.T) {
	router, sessions := newTestRouter(t)
	anonymous := session.Data{}
	member := session.Data{UserID: 1, Username: "alice"}

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		sess     session.Data
		want     int
		location string
	}{
		{"health", http.MethodGet, "/health", "", anonymous, http.StatusOK, ""},
		{"index anonymous", http.MethodGet, "/", "", anonymous, http.StatusSeeOther, "/login"},
		{"index member", http.MethodGet, "/", "", member, http.StatusSeeOther, "/dashboard"},
		{"unknown path", http.MethodGet, "/nope", "", anonymous, http.StatusNotFound, ""},
		{"login page", http.MethodGet, "/login", "", anonymous, http.StatusOK, ""},
		{"assessment page", http.MethodGet, "/assessment", "", anonymous, http.StatusOK, ""},
		{"signup without ticket", http.MethodGet, "/signup", "", anonymous, http.StatusSeeOther, "/assessment"},
		{"dashboard anonymous", http.MethodGet, "/dashboard", "", anonymous, http.StatusSeeOther, "/login"},
		{"game page anonymous", http.MethodGet, "/game/memory", "", anonymous, http.StatusSeeOther, "/login"},
		{"game page member", http.MethodGet, "/game/number-guess", "", member, http.StatusOK, ""},
		{"games member", http.MethodGet, "/games", "", member, http.StatusOK, ""},
		{"leaderboard page", http.MethodGet, "/leaderboard", "", anonymous, http.StatusOK, ""},
		{"leaderboard api", http.MethodGet, "/api/leaderboard", "", anonymous, http.StatusOK, ""},
		{"save score anonymous", http.MethodPost, "/api/save-score", `{"game_name":"memory","score":3}`, anonymous, http.StatusUnauthorized, ""},
		{"upload anonymous", http.MethodPost, "/upload-document", "", anonymous, http.StatusUnauthorized, ""},
		{"assessment api missing fields", http.MethodPost, "/api/assessment", `{}`, anonymous, http.StatusBadRequest, ""},
		{"static asset", http.MethodGet, "/static/style.css", "", anonymous, http.StatusOK, ""},
		{"google disabled", http.MethodGet, "/auth/google/login", "", anonymous, http.StatusSeeOther, "/login"},
		{"wrong method", http.MethodDelete, "/login", "", anonymous, http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tt.sess.Authenticated() {
				req = testutil.WithSession(t, sessions, req, tt.sess)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body)
			}
			if tt.location != "" && rec.Header().Get("Location") != tt.location {
				t.Errorf("expected redirect to %s, got %s", tt.location, rec.Header().Get("Location"))
			}
		})
	}
}

func TestInvalidSessionCookieIsCleared(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the invalid cookie to be expired")
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, "http://localhost:5173")

	req := httptest.NewRequest(http.MethodOptions, "/api/save-score", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
}

func TestNoCORSWithoutOrigins(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS header, got %q", got)
	}
}
