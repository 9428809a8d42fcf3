package http

import (
	"errors"
	"net/http"

	"storefront-admin/internal/database"
	pkgErrors "storefront-admin/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var invalid *database.InvalidModelError
	switch {
	case errors.As(err, &invalid):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, invalid.Error())
	case errors.Is(err, database.ErrModelRequired), errors.Is(err, database.ErrInvalidBetween):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
