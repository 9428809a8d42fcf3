package http

import (
	"github.com/gin-gonic/gin"

	"storefront-admin/internal/database"
	"storefront-admin/pkg/log"
)

// Handler is the public interface for the database HTTP delivery layer.
type Handler interface {
	Find(c *gin.Context)
	FindLog(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc database.UseCase
}

// New creates a new HTTP handler for the database domain.
func New(l log.Logger, uc database.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
