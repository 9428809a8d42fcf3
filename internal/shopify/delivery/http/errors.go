package http

import (
	"errors"
	"net/http"

	"storefront-admin/internal/shopify"
	pkgErrors "storefront-admin/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, shopify.ErrNotConfigured):
		return pkgErrors.ErrServiceUnavailable
	case errors.Is(err, shopify.ErrUpstream):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, shopify.ErrUpstream.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
