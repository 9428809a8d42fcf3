package httpserver

import (
	"context"
	"fmt"

	"storefront-admin/internal/dashboard"
	databaseHTTP "storefront-admin/internal/database/delivery/http"
	"storefront-admin/internal/model"
	shopifyHTTP "storefront-admin/internal/shopify/delivery/http"
	"storefront-admin/pkg/response"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(srv.handlePanic))
	srv.gin.Use(srv.mw.RequestID(), srv.mw.Logger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) handlePanic(c *gin.Context, recovered any) {
	err := fmt.Errorf("panic: %v", recovered)
	srv.l.Errorf(c.Request.Context(), "httpserver.handlePanic %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.InternalError(c, err)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the JSON API under /api and the dashboard pages at the root.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api", srv.mw.RateLimit())

	databaseHTTP.RegisterRoutes(api.Group("/database"), srv.databaseHandler)
	srv.l.Infof(ctx, "Database routes registered at /api/database")

	if srv.shopifyHandler != nil {
		shopifyHTTP.RegisterRoutes(api.Group("/shopify"), srv.shopifyHandler)
		srv.l.Infof(ctx, "Shopify routes registered at /api/shopify")
	} else {
		srv.l.Infof(ctx, "Shopify handler not configured, skipping order proxy routes")
	}

	if srv.dashboardHandler != nil {
		srv.gin.SetHTMLTemplate(dashboard.Templates())
		dashboard.RegisterRoutes(srv.gin, srv.dashboardHandler)
		srv.l.Infof(ctx, "Dashboard pages registered")
	} else {
		srv.l.Infof(ctx, "Dashboard handler not configured, skipping pages")
	}

	return nil
}
