package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-admin/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses the inbound X-Request-ID or generates one, and puts it on the request context.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Logger writes one access log line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		format := "%s %s %d %s"
		args := []any{c.Request.Method, c.Request.URL.Path, status, time.Since(start)}
		switch {
		case status >= 500:
			m.l.Errorf(ctx, format, args...)
		case status >= 400:
			m.l.Warnf(ctx, format, args...)
		default:
			m.l.Infof(ctx, format, args...)
		}
	}
}
