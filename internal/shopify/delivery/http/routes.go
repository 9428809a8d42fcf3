package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the storefront proxy routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/orders", h.ListOrders)
}
