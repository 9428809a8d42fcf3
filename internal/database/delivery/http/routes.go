package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the find routes. Each route has exactly one dispatch
// handler: /find switches on the model discriminator, /find/log has none.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	find := rg.Group("/find")
	{
		find.POST("", h.Find)
		find.POST("/log", h.FindLog)
	}
}
