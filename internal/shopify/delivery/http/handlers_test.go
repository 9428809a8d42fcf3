package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-admin/internal/shopify"
	shopifyHTTP "storefront-admin/internal/shopify/delivery/http"
	"storefront-admin/pkg/log"
)

type mockUseCase struct {
	out shopify.ListOrdersOutput
	err error
}

func (m mockUseCase) ListOrders(ctx context.Context, input shopify.ListOrdersInput) (shopify.ListOrdersOutput, error) {
	return m.out, m.err
}

func serve(uc shopify.UseCase) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	shopifyHTTP.RegisterRoutes(r.Group("/api/shopify"), shopifyHTTP.New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shopify/orders", nil))
	return w
}

func TestListOrders(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		w := serve(mockUseCase{out: shopify.ListOrdersOutput{Body: []byte(`{"orders":[{"id":1}]}`)}})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"orders":[{"id":1}]}` {
			t.Errorf("expected unmodified body, got %s", w.Body.String())
		}
	})

	t.Run("Not Configured", func(t *testing.T) {
		w := serve(mockUseCase{err: shopify.ErrNotConfigured})
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})

	t.Run("Upstream", func(t *testing.T) {
		w := serve(mockUseCase{err: shopify.ErrUpstream})
		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})
}
