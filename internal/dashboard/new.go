package dashboard

import (
	"time"

	"github.com/gin-gonic/gin"

	"storefront-admin/internal/resources"
	"storefront-admin/pkg/log"
)

// Handler serves the dashboard pages.
type Handler interface {
	Index(c *gin.Context)
	Page(name string) gin.HandlerFunc
	Search(name string) gin.HandlerFunc
	ApplyFilter(name string) gin.HandlerFunc
	Paginate(name string) gin.HandlerFunc
	SelectItem(name string) gin.HandlerFunc
	CloseModal(name string) gin.HandlerFunc
	ToggleSelected(name string) gin.HandlerFunc
}

// Config configures the dashboard.
type Config struct {
	SessionTTL  time.Duration
	MaxSessions int
	// LastPage is the externally set last pagination page of every list.
	LastPage int
}

type handler struct {
	l        log.Logger
	reg      *resources.Registry
	sessions *sessionStore
	pages    map[string]page
}

// New creates the dashboard handler.
func New(l log.Logger, reg *resources.Registry, cfg Config) Handler {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}

	h := &handler{
		l:        l,
		reg:      reg,
		sessions: newSessionStore(cfg.MaxSessions, cfg.SessionTTL),
	}
	h.pages = map[string]page{
		pageLogs:      h.logsPage(cfg.LastPage),
		pageOrders:    h.ordersPage(cfg.LastPage),
		pageTemplates: h.templatesPage(cfg.LastPage),
	}
	return h
}
