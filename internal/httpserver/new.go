package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront-admin/internal/dashboard"
	databaseHTTP "storefront-admin/internal/database/delivery/http"
	"storefront-admin/internal/middleware"
	shopifyHTTP "storefront-admin/internal/shopify/delivery/http"
	"storefront-admin/pkg/log"
)

var trustedProxies = []string{"127.0.0.1", "::1"}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domain handlers
	databaseHandler  databaseHTTP.Handler
	shopifyHandler   shopifyHTTP.Handler
	dashboardHandler dashboard.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	DatabaseHandler  databaseHTTP.Handler
	ShopifyHandler   shopifyHTTP.Handler
	DashboardHandler dashboard.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		databaseHandler:  cfg.DatabaseHandler,
		shopifyHandler:   cfg.ShopifyHandler,
		dashboardHandler: cfg.DashboardHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// Dashboard self-calls arrive from loopback and name the browser in X-Forwarded-For.
	if err := srv.gin.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.databaseHandler == nil {
		return errors.New("database handler is required")
	}
	return nil
}
