package handlers

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestOAuthStateRoundTrip(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{"/leaderboard?game=memory", "/leaderboard?game=memory"},
		{"", defaultAfterLogin},
		{"https://evil.example/", defaultAfterLogin},
		{"//evil.example", defaultAfterLogin},
	}
	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			raw, err := encodeOAuthState(oauthState{Next: tt.next})
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := decodeOAuthState(raw)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Next != tt.want {
				t.Errorf("expected next %q, got %q", tt.want, got.Next)
			}
		})
	}
}

func TestOAuthStateNoncesDiffer(t *testing.T) {
	a, _ := encodeOAuthState(oauthState{})
	b, _ := encodeOAuthState(oauthState{})
	if a == b {
		t.Error("expected a fresh nonce per state")
	}
}

func TestDecodeOAuthStateRejectsMalformed(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"next":"/games"}`))
	for _, raw := range []string{
		"",
		"no-separator",
		"." + payload,
		"nonce.!!!",
		"nonce." + base64.RawURLEncoding.EncodeToString([]byte("not json")),
		"nonce." + payload + ".extra",
	} {
		if _, err := decodeOAuthState(raw); !errors.Is(err, errBadState) {
			t.Errorf("%q: expected errBadState, got %v", raw, err)
		}
	}
	if s, err := decodeOAuthState("nonce." + payload); err != nil || !strings.HasPrefix(s.Next, "/games") {
		t.Errorf("expected valid state, got %+v, %v", s, err)
	}
}
