package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/BHa01559102-bit/hexecutioners/internal/i18n"
	"github.com/BHa01559102-bit/hexecutioners/internal/models"
	"github.com/BHa01559102-bit/hexecutioners/internal/repositories"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"github.com/BHa01559102-bit/hexecutioners/internal/utils"
	"github.com/BHa01559102-bit/hexecutioners/internal/web"
	"golang.org/x/crypto/bcrypt"
)

const oauthStateCookie = "oauth_state"

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupInput struct {
	Username        string `json:"username" validate:"required,min=3,max=32,alphanum_"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()).Authenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// GET /login
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()).Authenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	page := h.views.NewPage(r, "login.title")
	q := r.URL.Query()
	if q.Get("error") == "google" {
		page.Error = "login.error.google"
	}
	if q.Get("registered") == "1" {
		page.Flash = "login.flash.registered"
	}
	h.views.Render(w, http.StatusOK, "login", page)
}

// POST /login
// Login godoc
// @Summary Log in with username and password
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body loginInput true "Credentials"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	asJSON := utils.IsJSON(r)

	var input loginInput
	if err := decodeInput(r, &input); err != nil || h.validate.Struct(input) != nil {
		if asJSON {
			utils.Fail(w, http.StatusBadRequest, "Invalid input")
			return
		}
		h.renderLoginError(w, r, http.StatusBadRequest)
		return
	}

	user, err := h.repo.GetUserByUsername(r.Context(), strings.TrimSpace(input.Username))
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		h.serverError(w, r, "login lookup failed", err)
		return
	}
	if user == nil || user.Password == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		if asJSON {
			utils.Fail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.renderLoginError(w, r, http.StatusUnauthorized)
		return
	}

	h.startSession(w, r, user)

	if asJSON {
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Login successful",
			Data:    map[string]any{"username": user.Username},
		})
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) renderLoginError(w http.ResponseWriter, r *http.Request, status int) {
	page := h.views.NewPage(r, "login.title")
	page.Error = "login.error.invalid"
	h.views.Render(w, status, "login", page)
}

// startSession logs the user in, keeping the language choice and dropping
// any pre-signup assessment ticket.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user *models.User) {
	prev := session.FromContext(r.Context())
	h.saveSession(w, session.Data{
		UserID:   user.ID,
		Username: user.Username,
		Lang:     prev.Lang,
	})
}

// GET /signup
func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	if !h.hasEligibleTicket(r) {
		http.Redirect(w, r, "/assessment", http.StatusSeeOther)
		return
	}
	page := h.views.NewPage(r, "signup.title")
	page.Data = web.SignupView{}
	h.views.Render(w, http.StatusOK, "signup", page)
}

func (h *Handler) hasEligibleTicket(r *http.Request) bool {
	ticket := session.FromContext(r.Context()).AssessmentTicket
	if ticket == "" {
		return false
	}
	a, err := h.repo.GetAssessmentByTicket(r.Context(), ticket)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			slog.Error("assessment lookup failed", "error", err)
		}
		return false
	}
	return a.Eligible && a.UserID == nil
}

// POST /signup
// Signup godoc
// @Summary Create an account after passing the assessment
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body signupInput true "New account"
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 403 {object} utils.Payload
// @Router /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	asJSON := utils.IsJSON(r)
	sess := session.FromContext(r.Context())

	fail := func(status int, key, message string, input signupInput, errs map[string]string) {
		if asJSON {
			utils.JSONResponse(w, status, utils.Payload{Success: false, Message: message, Errors: errs})
			return
		}
		page := h.views.NewPage(r, "signup.title")
		page.Error = key
		page.Data = web.SignupView{Username: input.Username, Email: input.Email, Errors: errs}
		h.views.Render(w, status, "signup", page)
	}

	var input signupInput
	if err := decodeInput(r, &input); err != nil {
		fail(http.StatusBadRequest, "signup.error.invalid", "Invalid input", input, nil)
		return
	}
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if sess.AssessmentTicket == "" {
		fail(http.StatusForbidden, "signup.error.gate", repositories.ErrAssessmentRequired.Error(), input, nil)
		return
	}
	if input.Password != input.ConfirmPassword {
		fail(http.StatusBadRequest, "signup.error.mismatch", "Passwords do not match", input, nil)
		return
	}
	if errs := h.validate.Struct(input); errs != nil {
		fail(http.StatusBadRequest, "signup.error.invalid", "Invalid input", input, errs)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		h.serverError(w, r, "failed to hash password", err)
		return
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
	}
	err = h.repo.CreateUserWithAssessment(r.Context(), user, sess.AssessmentTicket)
	switch {
	case errors.Is(err, repositories.ErrUserExists):
		fail(http.StatusBadRequest, "signup.error.exists", "Username or email already exists", input, nil)
		return
	case errors.Is(err, repositories.ErrAssessmentRequired):
		fail(http.StatusForbidden, "signup.error.gate", err.Error(), input, nil)
		return
	case err != nil:
		h.serverError(w, r, "signup failed", err)
		return
	}

	h.saveSession(w, session.Data{Lang: sess.Lang})
	slog.Info("user registered", "user_id", user.ID)

	if asJSON {
		utils.JSONResponse(w, http.StatusCreated, utils.Payload{
			Success: true,
			Message: "User registered successfully",
		})
		return
	}
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

// GET|POST /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	if utils.IsJSON(r) {
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Logged out successfully",
		})
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// GET /auth/google/login?next=<path>
func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	next := i18n.SafeNext(r.URL.Query().Get("next"), defaultAfterLogin)
	state, err := encodeOAuthState(oauthState{Next: next})
	if err != nil {
		h.serverError(w, r, "failed to generate OAuth state", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GET /auth/google/callback
// Only existing accounts may sign in with Google; new visitors must pass
// the assessment and sign up first.
func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	state := r.FormValue("state")
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != state {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}
	meta, err := decodeOAuthState(state)
	if err != nil {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/auth/google", MaxAge: -1})

	gUser, err := h.google.FetchUser(r.Context(), r.FormValue("code"))
	if err != nil {
		slog.Warn("google sign-in failed", "error", err)
		http.Redirect(w, r, "/login?error=google", http.StatusSeeOther)
		return
	}

	user, err := h.repo.GetUserByEmail(r.Context(), gUser.Email)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		http.Redirect(w, r, "/assessment", http.StatusSeeOther)
		return
	case err != nil:
		h.serverError(w, r, "google user lookup failed", err)
		return
	}

	h.startSession(w, r, user)
	http.Redirect(w, r, meta.Next, http.StatusSeeOther)
}
