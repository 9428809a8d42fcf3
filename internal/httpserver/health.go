package httpserver

import (
	"storefront-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants.
const (
	HealthMessage = "Storefront admin is up"
	HealthVersion = "1.0.0"
	ServiceName   = "storefront-admin"
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports which optional components are wired.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic and list enabled components
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.status("ready")
	body["components"] = gin.H{
		"database":  srv.databaseHandler != nil,
		"shopify":   srv.shopifyHandler != nil,
		"dashboard": srv.dashboardHandler != nil,
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
