// Package i18n resolves the UI language and provides translated strings.
package i18n

import (
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var supportedTags = []language.Tag{
	language.English,
	language.Hindi,
}

var labels = map[language.Tag]string{
	language.English: "English",
	language.Hindi:   "हिन्दी",
}

var tagMatcher = language.NewMatcher(supportedTags)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

func Default() language.Tag {
	return language.English
}

func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Normalize maps a language code to a supported tag, falling back to the default.
func Normalize(code string) language.Tag {
	if tag, ok := parseTag(code); ok {
		return tag
	}
	return Default()
}

// Resolve picks the language for a request: the session's choice wins,
// then Accept-Language, then the default.
func Resolve(r *http.Request, sessionLang string) language.Tag {
	if tag, ok := parseTag(sessionLang); ok {
		return tag
	}
	if r != nil {
		if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
			if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
				_, idx, conf := tagMatcher.Match(tags...)
				if conf != language.No {
					return supportedTags[idx]
				}
			}
		}
	}
	return Default()
}

// Options lists every supported language with the active one marked.
func Options(active language.Tag) []LanguageOption {
	options := make([]LanguageOption, 0, len(supportedTags))
	for _, tag := range supportedTags {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  labels[tag],
			Active: tag == active,
		})
	}
	return options
}

// SafeNext returns next when it is a local path, otherwise fallback.
// It prevents the language switcher from becoming an open redirect.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return next
}

func parseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	base, _ := parsed.Base()
	for _, tag := range supportedTags {
		if b, _ := tag.Base(); b == base {
			return tag, true
		}
	}
	return language.Tag{}, false
}
