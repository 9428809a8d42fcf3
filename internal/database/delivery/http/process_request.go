package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processFindReq binds and validates the find request body.
func (h *handler) processFindReq(c *gin.Context) (findReq, error) {
	var req findReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFindLogReq binds the optional find/log body. An empty body is valid.
func (h *handler) processFindLogReq(c *gin.Context) (findLogReq, error) {
	var req findLogReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}
