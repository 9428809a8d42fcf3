package resources_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	dbHTTP "storefront-admin/internal/database/delivery/http"
	"storefront-admin/internal/database/repository/fixture"
	dbUC "storefront-admin/internal/database/usecase"
	"storefront-admin/internal/model"
	"storefront-admin/internal/resources"
	"storefront-admin/pkg/log"
	"storefront-admin/pkg/resource"
)

func TestNew(t *testing.T) {
	if _, err := resources.New(resources.Config{}, log.NewNop()); err == nil {
		t.Errorf("expected error without base url")
	}

	reg, err := resources.New(resources.Config{BaseURL: "http://localhost:8080"}, log.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		opts   resource.Options
		path   string
		method resource.Method
	}{
		{"find log", reg.Database.Find.Log.Options(), resources.PathDatabaseFind, http.MethodPost},
		{"find template", reg.Database.Find.Template.Options(), resources.PathDatabaseFind, http.MethodPost},
		{"log route", reg.Database.Find.LogRoute.Options(), resources.PathDatabaseFindLog, http.MethodPost},
		{"orders", reg.Shopify.Orders.Options(), resources.PathShopifyOrders, http.MethodGet},
	}
	for _, tc := range cases {
		if tc.opts.Path != tc.path || tc.opts.Method != tc.method {
			t.Errorf("%s: got %s %s", tc.name, tc.opts.Method, tc.opts.Path)
		}
	}
}

func newFixtureAPI(t *testing.T) *resources.Registry {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	dbHTTP.RegisterRoutes(r.Group("/api/database"), dbHTTP.New(l, dbUC.New(fixture.New(l), l)))
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	reg, err := resources.New(resources.Config{BaseURL: ts.URL, Client: ts.Client()}, l)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

func TestRegistryAgainstFixtureAPI(t *testing.T) {
	reg := newFixtureAPI(t)
	ctx := context.Background()

	t.Run("Find Log", func(t *testing.T) {
		out, err := reg.Database.Find.Log.Handler(ctx, &model.FindRequest{Model: model.ModelLog}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Data.Code != http.StatusOK || len(out.Data.Response.Items) != 4 {
			t.Errorf("expected code 200 and 4 logs, got %d and %d", out.Data.Code, len(out.Data.Response.Items))
		}
	})

	t.Run("Find Template", func(t *testing.T) {
		out, err := reg.Database.Find.Template.Handler(ctx, &model.FindRequest{Model: model.ModelTemplate}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Data.Response.Items) != 2 {
			t.Errorf("expected 2 templates, got %d", len(out.Data.Response.Items))
		}
	})

	t.Run("Log Route Without Payload", func(t *testing.T) {
		out, err := reg.Database.Find.LogRoute.Handler(ctx, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Data.Response.Items) != 4 {
			t.Errorf("expected 4 logs, got %d", len(out.Data.Response.Items))
		}
	})

	t.Run("Invalid Model", func(t *testing.T) {
		out, err := reg.Database.Find.Log.Handler(ctx, &model.FindRequest{Model: "bogus"}, nil)
		var statusErr *resource.StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 status error, got %v", err)
		}
		if out.Response == nil || out.Response.StatusCode != http.StatusBadRequest {
			t.Errorf("expected envelope to carry the response")
		}
	})
}
