// Package session keeps per-visitor state in a signed cookie.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "session"

type contextKey string

const dataKey contextKey = "session"

// Data is everything the server remembers about a visitor between requests.
type Data struct {
	UserID           uint   `json:"-"`
	Username         string `json:"username,omitempty"`
	Lang             string `json:"lang,omitempty"`
	AssessmentTicket string `json:"ticket,omitempty"`
}

func (d Data) Authenticated() bool {
	return d.UserID != 0
}

type claims struct {
	Data
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Save signs d and sets it as the session cookie.
func (m *Manager) Save(w http.ResponseWriter, d Data) error {
	now := time.Now()
	c := claims{
		Data: d,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	if d.UserID != 0 {
		c.Subject = strconv.FormatUint(uint64(d.UserID), 10)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load decodes the session cookie. A missing cookie is not an error and
// yields an empty anonymous session.
func (m *Manager) Load(r *http.Request) (Data, error) {
	cookie, err := r.Cookie(CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return Data{}, nil
	}
	if err != nil {
		return Data{}, err
	}

	var c claims
	_, err = jwt.ParseWithClaims(cookie.Value, &c, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return Data{}, fmt.Errorf("invalid session: %w", err)
	}

	d := c.Data
	if c.Subject != "" {
		id, err := strconv.ParseUint(c.Subject, 10, 64)
		if err != nil {
			return Data{}, fmt.Errorf("invalid session subject: %w", err)
		}
		d.UserID = uint(id)
	}
	return d, nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware attaches the decoded session to every request. Invalid or
// expired cookies are dropped and the visitor continues anonymously.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, err := m.Load(r)
		if err != nil {
			m.Clear(w)
			d = Data{}
		}
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), d)))
	})
}

func NewContext(ctx context.Context, d Data) context.Context {
	return context.WithValue(ctx, dataKey, d)
}

// FromContext returns the request's session, or an empty one.
func FromContext(ctx context.Context) Data {
	d, _ := ctx.Value(dataKey).(Data)
	return d
}
