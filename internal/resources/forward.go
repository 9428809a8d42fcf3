package resources

import (
	"context"
	"net/http"

	"storefront-admin/pkg/log"
	"storefront-admin/pkg/resource"
)

const (
	HeaderForwardedFor = "X-Forwarded-For"
	HeaderRequestID    = "X-Request-ID"
)

type clientIPKey struct{}

// WithClientIP records the browser address a self-call is made on behalf of.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP returns the address stored by WithClientIP, or "".
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// Forward builds the per-call override that attributes a self-call to the
// originating browser request: its address for rate limiting and its
// request id for logging. It returns nil when ctx carries neither.
func Forward(ctx context.Context) *resource.Options {
	header := http.Header{}
	if ip := ClientIP(ctx); ip != "" {
		header.Set(HeaderForwardedFor, ip)
	}
	if id := log.RequestID(ctx); id != "" {
		header.Set(HeaderRequestID, id)
	}
	if len(header) == 0 {
		return nil
	}
	return &resource.Options{Header: header}
}
