package http

import (
	"github.com/gin-gonic/gin"

	"storefront-admin/internal/shopify"
	"storefront-admin/pkg/log"
)

// Handler is the public interface for the shopify HTTP delivery layer.
type Handler interface {
	ListOrders(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc shopify.UseCase
}

// New creates a new HTTP handler for the storefront order proxy.
func New(l log.Logger, uc shopify.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
