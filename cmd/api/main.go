package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-admin/config"
	_ "storefront-admin/docs" // Swagger docs
	"storefront-admin/internal/dashboard"
	databaseHTTP "storefront-admin/internal/database/delivery/http"
	"storefront-admin/internal/database/repository/fixture"
	databaseUC "storefront-admin/internal/database/usecase"
	"storefront-admin/internal/httpserver"
	"storefront-admin/internal/middleware"
	"storefront-admin/internal/resources"
	shopifyHTTP "storefront-admin/internal/shopify/delivery/http"
	shopifyRepo "storefront-admin/internal/shopify/repository"
	"storefront-admin/internal/shopify/repository/platform"
	shopifyUC "storefront-admin/internal/shopify/usecase"
	"storefront-admin/pkg/log"
)

// @title       Storefront Admin API
// @description Add-on admin API: fixture-backed record lookup and storefront order proxy.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Storefront Admin...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "API base URL: %s", cfg.API.BaseURL)

	// 3. Database domain (fixture data source)
	databaseRepo := fixture.New(logger)
	databaseHandler := databaseHTTP.New(logger, databaseUC.New(databaseRepo, logger))

	// 4. Shopify domain (optional platform credentials)
	var orderRepo shopifyRepo.Repository
	if cfg.Shopify.ShopURL != "" {
		orderRepo, err = platform.New(platform.Config{
			ShopURL:     cfg.Shopify.ShopURL,
			AccessToken: cfg.Shopify.AccessToken,
			APIVersion:  cfg.Shopify.APIVersion,
			RatePerSec:  cfg.Shopify.RatePerSec,
		}, http.DefaultClient, logger)
		if err != nil {
			logger.Warnf(ctx, "Shopify platform not available: %v", err)
			orderRepo = nil
		} else {
			logger.Infof(ctx, "Shopify platform: %s", cfg.Shopify.ShopURL)
		}
	} else {
		logger.Warn(ctx, "Shopify skipped: shopify.shop_url is empty, /api/shopify/orders answers 503")
	}
	shopifyHandler := shopifyHTTP.New(logger, shopifyUC.New(orderRepo, logger))

	// 5. Resource registry and dashboard
	reg, err := resources.New(resources.Config{BaseURL: cfg.API.BaseURL}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build resource registry: ", err)
		return
	}
	dashboardHandler := dashboard.New(logger, reg, dashboard.Config{
		SessionTTL:  cfg.Dashboard.SessionTTL,
		MaxSessions: cfg.Dashboard.MaxSessions,
		LastPage:    cfg.Dashboard.LastPage,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		}),
		DatabaseHandler:  databaseHandler,
		ShopifyHandler:   shopifyHandler,
		DashboardHandler: dashboardHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
