package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipes_api/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.userIdMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": authenticatedUserID(c)})
	})
	return r
}

func TestUserIDMiddleware_Rejects(t *testing.T) {
	cases := []struct {
		name      string
		header    string
		parseErr  error
		wantParse bool
	}{
		{name: "missing header", header: ""},
		{name: "invalid scheme", header: "Token abc"},
		{name: "bearer without token", header: "Bearer"},
		{name: "bearer with blank token", header: "Bearer    "},
		{name: "garbage token", header: "Bearer 243123414324", parseErr: service.ErrInvalidToken, wantParse: true},
		{name: "expired token", header: "Bearer expired", parseErr: errors.New("token is expired"), wantParse: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseErr: tc.parseErr}
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusForbidden {
				t.Fatalf("status: got %d, want 403 (body=%s)", w.Code, w.Body.String())
			}
			var out struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Success || out.Message != "Unauthorized" {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
			if (auth.parseCalls > 0) != tc.wantParse {
				t.Fatalf("ParseToken calls = %d, wantParse %v", auth.parseCalls, tc.wantParse)
			}
		})
	}
}

func TestUserIDMiddleware_SuccessSetsUserIDAndProceeds(t *testing.T) {
	auth := &mockAuth{parseID: "u-123"}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool   `json:"ok"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != "u-123" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastParseToken != "good-token" {
		t.Fatalf("ParseToken got %q, want %q", auth.lastParseToken, "good-token")
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"Bearer  padded ", "padded", true},
		{"bearer abc", "", false},
		{"Basic Zm9vOmJhcg==", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := bearerToken(tc.header)
		if got != tc.want || ok != tc.ok {
			t.Errorf("bearerToken(%q) = (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}
