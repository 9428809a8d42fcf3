package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat_env")
	t.Setenv("DASHBOARD_LAST_PAGE", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("expected API base url derived from port, got %q", cfg.API.BaseURL)
	}
	if cfg.Shopify.AccessToken != "shpat_env" {
		t.Errorf("expected token from env, got %q", cfg.Shopify.AccessToken)
	}
	if cfg.Shopify.APIVersion != "2024-01" || cfg.Shopify.RatePerSec != 2 {
		t.Errorf("unexpected shopify defaults: %+v", cfg.Shopify)
	}
	if cfg.Dashboard.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m session ttl, got %v", cfg.Dashboard.SessionTTL)
	}
	if cfg.Dashboard.LastPage != 4 {
		t.Errorf("expected last page from env, got %d", cfg.Dashboard.LastPage)
	}
}

func TestValidate(t *testing.T) {
	if err := validate(&Config{HTTPServer: HTTPServerConfig{Port: 0}}); err == nil {
		t.Errorf("expected error for port 0")
	}
	if err := validate(&Config{HTTPServer: HTTPServerConfig{Port: 80}, Dashboard: DashboardConfig{LastPage: -1}}); err == nil {
		t.Errorf("expected error for negative last page")
	}
	if err := validate(&Config{HTTPServer: HTTPServerConfig{Port: 80}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
