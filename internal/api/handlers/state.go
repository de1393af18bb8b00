package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BHa01559102-bit/hexecutioners/internal/i18n"
	"github.com/BHa01559102-bit/hexecutioners/internal/utils"
)

const defaultAfterLogin = "/dashboard"

var errBadState = errors.New("malformed oauth state")

// oauthState travels through Google as "<nonce>.<base64 json>". The nonce is
// matched against the state cookie; the payload says where to land.
type oauthState struct {
	Next string `json:"next"`
}

func encodeOAuthState(s oauthState) (string, error) {
	nonce, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", fmt.Errorf("generate state nonce: %w", err)
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}
	return nonce + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

// decodeOAuthState parses the payload and forces Next to a local path.
func decodeOAuthState(raw string) (oauthState, error) {
	nonce, payload, ok := strings.Cut(raw, ".")
	if !ok || nonce == "" || strings.Contains(payload, ".") {
		return oauthState{}, errBadState
	}
	b, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return oauthState{}, fmt.Errorf("%w: %v", errBadState, err)
	}
	var s oauthState
	if err := json.Unmarshal(b, &s); err != nil {
		return oauthState{}, fmt.Errorf("%w: %v", errBadState, err)
	}
	s.Next = i18n.SafeNext(s.Next, defaultAfterLogin)
	return s, nil
}
