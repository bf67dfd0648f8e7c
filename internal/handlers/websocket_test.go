package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"recipes_api/internal/models"
	"recipes_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_negative", "/ws?interval=-1s", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

type wsTestEnvelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialRecipeFeed(t *testing.T, s *service.Service, query string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(newTestRouter(s))
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws/recipes"
	u.RawQuery = query

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWebSocket_RecipeStream_InitialAndPeriodic(t *testing.T) {
	d := 2.0
	rec := &mockRecipes{list: []models.Recipe{{ID: "r-1", Name: "Nuggets", Difficulty: &d}}}
	conn := dialRecipeFeed(t, &service.Service{Recipes: rec}, "interval_ms=20")

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var env wsTestEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "recipes" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var list []models.Recipe
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("unmarshal recipes: %v", err)
	}
	if len(list) != 1 || list[0].ID != "r-1" || list[0].Name != "Nuggets" || *list[0].Difficulty != 2 {
		t.Fatalf("unexpected recipes: %+v", list)
	}

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	env = wsTestEnvelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "recipes" {
		t.Fatalf("expected type=recipes, got %+v", env)
	}
}

func TestWebSocket_EmptyStoreSendsEmptyList(t *testing.T) {
	conn := dialRecipeFeed(t, &service.Service{Recipes: &mockRecipes{list: []models.Recipe{}}}, "")

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var env wsTestEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "recipes" || string(env.Data) != "[]" {
		t.Fatalf("expected empty list, got %+v (data=%s)", env, env.Data)
	}
}

func TestWebSocket_StoreErrorSendsErrorFrame(t *testing.T) {
	rec := &mockRecipes{listErr: errors.New("boom")}
	conn := dialRecipeFeed(t, &service.Service{Recipes: rec}, "")

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var env wsTestEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "error" || env.Error != msgListFailed || len(env.Data) != 0 {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestWebSocket_PlainGETIsRejected(t *testing.T) {
	r := newTestRouter(&service.Service{Recipes: &mockRecipes{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws/recipes", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from failed upgrade, got %d", w.Code)
	}
}
