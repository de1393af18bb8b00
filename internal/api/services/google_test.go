package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"golang.org/x/oauth2"
)

func TestAuthCodeURL(t *testing.T) {
	g := NewGoogleAuth(config.GoogleConfig{ClientID: "cid", ClientSecret: "sec", RedirectURL: "http://localhost/cb"})
	u, err := url.Parse(g.AuthCodeURL("xyz"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if q.Get("state") != "xyz" || q.Get("client_id") != "cid" || q.Get("redirect_uri") != "http://localhost/cb" {
		t.Errorf("unexpected auth url %s", u)
	}
}

func TestFetchUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token":"at","token_type":"Bearer","expires_in":3600}`)
		case "/userinfo":
			if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer at") {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			fmt.Fprint(w, `{"id":"1","email":"asha@example.com","name":"Asha"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	g := &GoogleAuth{
		config: &oauth2.Config{
			ClientID:     "cid",
			ClientSecret: "sec",
			Endpoint:     oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"},
		},
		userInfoURL: srv.URL + "/userinfo",
	}

	user, err := g.FetchUser(context.Background(), "code")
	if err != nil {
		t.Fatalf("fetch user: %v", err)
	}
	if user.Email != "asha@example.com" || user.Name != "Asha" {
		t.Errorf("unexpected user %+v", user)
	}
}
