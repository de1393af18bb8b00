package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONResponse(rec, http.StatusBadRequest, Payload{
		Success: false,
		Message: "Invalid input",
		Errors:  map[string]string{"score": "score is required"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["success"] != false || got["message"] != "Invalid input" {
		t.Errorf("unexpected body %v", got)
	}
	if _, ok := got["data"]; ok {
		t.Error("empty data should be omitted")
	}
	if errs, ok := got["errors"].(map[string]any); !ok || errs["score"] != "score is required" {
		t.Errorf("unexpected errors %v", got["errors"])
	}
}

func TestIsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"application/x-www-form-urlencoded", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			r.Header.Set("Content-Type", tt.contentType)
			if got := IsJSON(r); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(16)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, _ := GenerateSecureToken(16)
	if a == b {
		t.Error("tokens should differ")
	}
	if len(a) != 22 {
		t.Errorf("16 bytes should encode to 22 chars, got %d", len(a))
	}
}
