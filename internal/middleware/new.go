package middleware

import (
	"storefront-admin/pkg/log"
)

// Config configures the middleware set.
type Config struct {
	// RateLimitPerMin is the per-client budget of API calls; 0 disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return m
}
