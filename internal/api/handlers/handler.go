package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/BHa01559102-bit/hexecutioners/internal/api/services"
	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"github.com/BHa01559102-bit/hexecutioners/internal/predictor"
	"github.com/BHa01559102-bit/hexecutioners/internal/repositories"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"github.com/BHa01559102-bit/hexecutioners/internal/utils"
	"github.com/BHa01559102-bit/hexecutioners/internal/validation"
	"github.com/BHa01559102-bit/hexecutioners/internal/web"
)

// GoogleProvider is the part of the OAuth flow the handlers depend on.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	FetchUser(ctx context.Context, code string) (*services.GoogleUser, error)
}

// Deps groups everything the handlers need. Google may be nil.
type Deps struct {
	Config    config.Config
	Repo      *repositories.Repository
	Store     repositories.FileStore
	Predictor *predictor.Predictor
	Schema    *predictor.Schema
	Sessions  *session.Manager
	Views     *web.Renderer
	Google    GoogleProvider
}

type Handler struct {
	cfg       config.Config
	repo      *repositories.Repository
	store     repositories.FileStore
	predictor *predictor.Predictor
	schema    *predictor.Schema
	sessions  *session.Manager
	views     *web.Renderer
	validate  *validation.Validator
	google    GoogleProvider
	now       func() time.Time
}

func New(d Deps) *Handler {
	return &Handler{
		cfg:       d.Config,
		repo:      d.Repo,
		store:     d.Store,
		predictor: d.Predictor,
		schema:    d.Schema,
		sessions:  d.Sessions,
		views:     d.Views,
		validate:  validation.New(),
		google:    d.Google,
		now:       time.Now,
	}
}

// saveSession writes d and logs, rather than fails, on signing errors.
func (h *Handler) saveSession(w http.ResponseWriter, d session.Data) {
	if err := h.sessions.Save(w, d); err != nil {
		slog.Error("failed to save session", "error", err)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "path", r.URL.Path)
	if utils.IsJSON(r) || r.Header.Get("Accept") == "application/json" {
		utils.Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// decodeInput fills dst from a JSON body or, for browser forms, from the
// first value of each posted field re-encoded as JSON.
func decodeInput(r *http.Request, dst any) error {
	if utils.IsJSON(r) {
		return json.NewDecoder(r.Body).Decode(dst)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	b, err := json.Marshal(formValues(r))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func formValues(r *http.Request) map[string]any {
	out := make(map[string]any, len(r.PostForm))
	for key, vals := range r.PostForm {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}
