package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-admin/internal/shopify"
	"storefront-admin/pkg/response"
)

// ListOrders godoc
// @Summary     List storefront orders
// @Description Proxies the platform order listing and returns its body unmodified.
// @Tags        Shopify
// @Produce     json
// @Param       status query string false "Platform order status (default: any)"
// @Success     200 {object} model.OrdersEnvelope
// @Failure     502 {object} response.Resp "Upstream error"
// @Failure     503 {object} response.Resp "Platform not configured"
// @Router      /api/shopify/orders [GET]
func (h *handler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListOrders(ctx, shopify.ListOrdersInput{Status: c.Query("status")})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOrders: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", output.Body)
}
