package shopify

import "errors"

var (
	ErrNotConfigured = errors.New("storefront platform is not configured")
	ErrUpstream      = errors.New("storefront platform request failed")
)
