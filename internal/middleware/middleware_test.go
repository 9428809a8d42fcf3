package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-admin/internal/middleware"
	"storefront-admin/pkg/log"
)

func newRouter(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.Logger(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newRouter(middleware.New(log.NewNop(), middleware.Config{}))

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(middleware.HeaderRequestID)
		if id == "" {
			t.Fatalf("expected generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("expected request id on context, got %q", w.Body.String())
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "req-123")
		r.ServeHTTP(w, req)
		if w.Header().Get(middleware.HeaderRequestID) != "req-123" || w.Body.String() != "req-123" {
			t.Errorf("expected inbound request id to be reused")
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of 1 and a refill far slower than the test.
	r := newRouter(middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 10}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK {
		t.Errorf("expected first request to pass, got %d", codes[0])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected throttling, got %v", codes)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newRouter(middleware.New(log.NewNop(), middleware.Config{}))
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}
