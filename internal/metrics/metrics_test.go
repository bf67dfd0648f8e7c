package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/recipes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/recipes/:id", "200"))

	for _, id := range []string{"a", "b", "c"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/"+id, nil))
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/recipes/:id", "200"))
	if after-before != 3 {
		t.Fatalf("expected 3 requests on one series, got %v", after-before)
	}
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404"))

	if after-before != 1 {
		t.Fatalf("expected unmatched request to be counted, got delta %v", after-before)
	}
}

func TestObserveCounters(t *testing.T) {
	before := testutil.ToFloat64(loginAttempts.WithLabelValues(LoginRejected))
	ObserveLogin(LoginRejected)
	if got := testutil.ToFloat64(loginAttempts.WithLabelValues(LoginRejected)) - before; got != 1 {
		t.Fatalf("login counter delta = %v", got)
	}

	beforeErr := testutil.ToFloat64(recipeOperations.WithLabelValues("delete", "error"))
	ObserveRecipeOp("delete", errors.New("boom"))
	if got := testutil.ToFloat64(recipeOperations.WithLabelValues("delete", "error")) - beforeErr; got != 1 {
		t.Fatalf("recipe op counter delta = %v", got)
	}
}
