// Package web renders the server-side HTML pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"github.com/BHa01559102-bit/hexecutioners/internal/i18n"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"golang.org/x/text/message"
)

//go:embed templates/*.html static/*
var files embed.FS

var pageNames = []string{
	"login",
	"signup",
	"assessment",
	"dashboard",
	"games",
	"number_guess",
	"memory",
	"trivia",
	"leaderboard",
	"profile",
}

// Page is the data every template receives.
type Page struct {
	Title         string // message key
	Lang          string
	Languages     []i18n.LanguageOption
	Username      string
	Path          string
	Error         string // message key
	Flash         string // message key
	GoogleEnabled bool
	Data          any

	printer *message.Printer
}

// T translates a message key into the page language.
func (p Page) T(key string, args ...any) string {
	if p.printer == nil {
		return key
	}
	return p.printer.Sprintf(key, args...)
}

type Renderer struct {
	pages  map[string]*template.Template
	google bool
}

func NewRenderer(cfg config.Config) (*Renderer, error) {
	funcs := template.FuncMap{
		"gameKey": func(id string) string { return "game." + id },
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(files,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages, google: cfg.Google.Enabled()}, nil
}

// NewPage prepares the common page fields for the current visitor.
func (rd *Renderer) NewPage(r *http.Request, title string) Page {
	sess := session.FromContext(r.Context())
	tag := i18n.Resolve(r, sess.Lang)
	return Page{
		Title:         title,
		Lang:          tag.String(),
		Languages:     i18n.Options(tag),
		Username:      sess.Username,
		Path:          r.URL.RequestURI(),
		GoogleEnabled: rd.google,
		printer:       i18n.Printer(tag),
	}
}

// Render executes the named page into a buffer first so a template error
// never produces a half-written response.
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	tmpl, ok := rd.pages[name]
	if !ok {
		slog.Error("unknown template", "name", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		slog.Error("template execution failed", "name", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Static serves the embedded stylesheet and scripts.
func Static() http.Handler {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}
