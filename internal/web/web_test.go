package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"github.com/BHa01559102-bit/hexecutioners/internal/models"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rd, err := NewRenderer(config.Config{})
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return rd
}

func requestWithSession(path string, d session.Data) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	return r.WithContext(session.NewContext(r.Context(), d))
}

func TestRenderEveryPage(t *testing.T) {
	rd := newTestRenderer(t)
	user := &models.User{ID: 1, Username: "asha", Email: "asha@example.com", CreatedAt: time.Now()}
	games := []GameSummary{{ID: models.GameTrivia, Path: GamePath(models.GameTrivia), Best: 80, Played: true}}

	tests := []struct {
		name  string
		title string
		data  any
		want  string
	}{
		{"login", "login.title", nil, `action="/login"`},
		{"signup", "signup.title", SignupView{Username: "asha", Errors: map[string]string{"email": "email is required"}}, "email is required"},
		{"assessment", "assessment.title", AssessmentView{
			Questions: []Question{{Field: "Age"}, {Field: "Gender", Options: []string{"female", "male"}}},
			Answers:   map[string]string{"Gender": "male"},
			Result:    &AssessmentResult{Percentage: 42, CanSignup: true},
		}, "Estimated dropout risk: 42%"},
		{"dashboard", "dashboard.title", DashboardView{Games: games}, "Welcome, asha!"},
		{"games", "games.title", DashboardView{Games: games}, `href="/game/trivia"`},
		{"number_guess", "game.number_guess", nil, "saveScore"},
		{"memory", "game.memory", nil, "saveScore"},
		{"trivia", "game.trivia", nil, "saveScore"},
		{"leaderboard", "leaderboard.title", LeaderboardView{
			Entries: []models.LeaderboardEntry{{Rank: 1, Username: "asha", Score: 90, GamesPlayed: 2}},
			Games:   models.Games,
		}, `class="me"`},
		{"profile", "profile.title", ProfileView{
			User:      user,
			Documents: []models.Document{{ID: 3, DocumentType: "id_card", FilePath: "1/id_card_20240101_000000.png", UploadedAt: time.Now()}},
		}, "/download-document/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := requestWithSession("/"+tt.name, session.Data{UserID: 1, Username: "asha"})
			page := rd.NewPage(r, tt.title)
			page.Data = tt.data

			rec := httptest.NewRecorder()
			rd.Render(rec, http.StatusOK, tt.name, page)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("expected body to contain %q", tt.want)
			}
		})
	}
}

func TestRenderTranslates(t *testing.T) {
	rd := newTestRenderer(t)
	r := requestWithSession("/login", session.Data{Lang: "hi"})
	page := rd.NewPage(r, "login.title")
	page.Error = "login.error.invalid"

	rec := httptest.NewRecorder()
	rd.Render(rec, http.StatusUnauthorized, "login", page)

	body := rec.Body.String()
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(body, `lang="hi"`) || !strings.Contains(body, "उपयोगकर्ता नाम या पासवर्ड गलत है") {
		t.Errorf("expected hindi page, got %s", body)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	rd := newTestRenderer(t)
	rec := httptest.NewRecorder()
	rd.Render(rec, http.StatusOK, "nope", Page{})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestStatic(t *testing.T) {
	rec := httptest.NewRecorder()
	Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games.js", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "function saveScore") {
		t.Errorf("unexpected static response %d", rec.Code)
	}
}
