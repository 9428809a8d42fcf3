package platform_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	repo "storefront-admin/internal/shopify/repository"
	"storefront-admin/internal/shopify/repository/platform"
	"storefront-admin/pkg/log"
	"storefront-admin/pkg/resource"
)

func TestListOrders(t *testing.T) {
	const body = `{"orders":[{"id":450789469,"name":"#1001","financial_status":"paid"}]}`

	var gotPath, gotToken, gotStatus string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotStatus = r.URL.Query().Get("status")
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		if r.URL.Query().Get("status") == "closed" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"errors":"bad token"}`)
			return
		}
		io.WriteString(w, body)
	}))
	defer ts.Close()

	r, err := platform.New(platform.Config{
		ShopURL:     ts.URL,
		AccessToken: "shpat_test",
		APIVersion:  "2024-01",
		RatePerSec:  100,
	}, ts.Client(), log.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Any Status", func(t *testing.T) {
		raw, err := r.ListOrders(context.Background(), repo.ListOrdersOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(raw) != body {
			t.Errorf("expected body passthrough, got %s", raw)
		}
		if gotPath != "/admin/api/2024-01/orders.json" || gotStatus != "any" {
			t.Errorf("unexpected request %s status=%s", gotPath, gotStatus)
		}
		if gotToken != "shpat_test" {
			t.Errorf("expected access token header, got %q", gotToken)
		}
	})

	t.Run("Upstream Error", func(t *testing.T) {
		_, err := r.ListOrders(context.Background(), repo.ListOrdersOptions{Status: "closed"})
		var statusErr *resource.StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401 StatusError, got %v", err)
		}
	})
}

func TestNewRequiresShopURL(t *testing.T) {
	if _, err := platform.New(platform.Config{}, nil, log.NewNop()); err == nil {
		t.Errorf("expected error without shop url")
	}
}
