package handlers

import (
	"errors"
	"net/http"

	"github.com/BHa01559102-bit/hexecutioners/internal/i18n"
	"github.com/BHa01559102-bit/hexecutioners/internal/repositories"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"github.com/BHa01559102-bit/hexecutioners/internal/web"
)

// suggestedDocumentTypes pre-fill the upload form; any valid slug is accepted.
var suggestedDocumentTypes = []string{"id_proof", "address_proof", "marksheet", "photo"}

// GET /profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	ctx := r.Context()

	user, err := h.repo.GetUserByID(ctx, sess.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		// The account behind a still-valid cookie is gone.
		h.sessions.Clear(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to load user", err)
		return
	}

	docs, err := h.repo.ListDocuments(ctx, user.ID)
	if err != nil {
		h.serverError(w, r, "failed to load documents", err)
		return
	}

	assessment, err := h.repo.GetAssessmentByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		h.serverError(w, r, "failed to load assessment", err)
		return
	}

	page := h.views.NewPage(r, "profile.title")
	page.Data = web.ProfileView{
		User:          user,
		Documents:     docs,
		DocumentTypes: suggestedDocumentTypes,
		Assessment:    assessment,
	}
	h.views.Render(w, http.StatusOK, "profile", page)
}

// GET /set-language
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	sess.Lang = i18n.Normalize(r.URL.Query().Get(i18n.LangParam)).String()
	h.saveSession(w, sess)

	next := i18n.SafeNext(r.URL.Query().Get("next"), "/")
	http.Redirect(w, r, next, http.StatusSeeOther)
}
