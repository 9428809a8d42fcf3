package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-admin/pkg/response"
)

// Find godoc
// @Summary     Find records by model
// @Description Returns the fixture records of the requested model. query.between is accepted but not applied.
// @Tags        Database
// @Accept      json
// @Produce     json
// @Param       body body findReq true "Model discriminator (log|template)"
// @Success     200  {object} model.FindEnvelope[model.Log]
// @Failure     400  {object} response.Resp "Invalid model"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/database/find [POST]
func (h *handler) Find(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFindReq(c)
	if err != nil {
		h.l.Warnf(ctx, "database.delivery.http.Find: bind: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Find(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Find: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newFindResp(req, output))
}

// FindLog godoc
// @Summary     Find logs
// @Description Returns the fixture logs. No model discriminator is read.
// @Tags        Database
// @Accept      json
// @Produce     json
// @Success     200  {object} model.FindEnvelope[model.Log]
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/database/find/log [POST]
func (h *handler) FindLog(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFindLogReq(c)
	if err != nil {
		h.l.Warnf(ctx, "database.delivery.http.FindLog: bind: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FindLogs(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FindLogs: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newFindResp(req, output))
}
