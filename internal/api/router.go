package api

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/BHa01559102-bit/hexecutioners/docs"
	"github.com/BHa01559102-bit/hexecutioners/internal/api/handlers"
	"github.com/BHa01559102-bit/hexecutioners/internal/api/middleware"
	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"github.com/BHa01559102-bit/hexecutioners/internal/models"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"github.com/BHa01559102-bit/hexecutioners/internal/web"
)

func SetupRouter(h *handlers.Handler, sessions *session.Manager, cfg config.Config) http.Handler {
	mainMux := http.NewServeMux()

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", h.Health)
	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)
	mainMux.Handle("GET /static/", http.StripPrefix("/static", web.Static()))

	mainMux.HandleFunc("GET /{$}", h.Index)
	mainMux.HandleFunc("GET /login", h.LoginPage)
	mainMux.HandleFunc("POST /login", h.Login)
	mainMux.HandleFunc("GET /signup", h.SignupPage)
	mainMux.HandleFunc("POST /signup", h.Signup)
	mainMux.HandleFunc("/logout", h.Logout)
	mainMux.HandleFunc("GET /assessment", h.AssessmentPage)
	mainMux.HandleFunc("POST /assessment", h.SubmitAssessment)
	mainMux.HandleFunc("GET /leaderboard", h.LeaderboardPage)
	mainMux.HandleFunc("GET /set-language", h.SetLanguage)

	authMux := http.NewServeMux()
	authMux.HandleFunc("GET /google/login", h.HandleGoogleLogin)
	authMux.HandleFunc("GET /google/callback", h.HandleGoogleCallback)
	mainMux.Handle("/auth/", http.StripPrefix("/auth", authMux))

	// ---------- PROTECTED ROUTES ----------
	pages := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{"GET /dashboard", h.Dashboard},
		{"GET /games", h.Games},
		{"GET /profile", h.Profile},
		{"GET /download-document/{id}", h.DownloadDocument},
	}
	for _, game := range models.Games {
		pages = append(pages, struct {
			pattern string
			handler http.HandlerFunc
		}{"GET " + web.GamePath(game), h.GamePage(game)})
	}
	for _, p := range pages {
		mainMux.Handle(p.pattern, middleware.RequireUser(p.handler))
	}
	mainMux.Handle("POST /upload-document", middleware.RequireUserJSON(http.HandlerFunc(h.UploadDocument)))

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /assessment", h.SubmitAssessment)
	apiMux.Handle("POST /save-score", middleware.RequireUserJSON(http.HandlerFunc(h.SaveScore)))
	apiMux.HandleFunc("GET /leaderboard", h.Leaderboard)
	mainMux.Handle("/api/", http.StripPrefix("/api", apiMux))

	slog.Info("router initialized")
	handler := sessions.Middleware(mainMux)
	// rs/cors treats an empty origin list as "allow all", so only mount it
	// when origins are configured.
	if len(cfg.AllowedOrigins) > 0 {
		handler = cors.New(cfg.CorsOptions()).Handler(handler)
	}
	handler = chimw.Recoverer(handler)
	handler = middleware.Logger(handler)
	handler = chimw.RealIP(handler)
	handler = chimw.RequestID(handler)
	return handler
}
