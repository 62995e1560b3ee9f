package http

import (
	"disc-rental/internal/inventory"
	pkgErrors "disc-rental/pkg/errors"
	"disc-rental/pkg/objstore"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case inventory.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case inventory.ErrInvalidCategory:
		return pkgErrors.NewHTTPError(400, "invalid category")
	case inventory.ErrInvalidQuantity:
		return pkgErrors.NewHTTPError(400, "quantity must be zero or more")
	case inventory.ErrInvalidPrice:
		return pkgErrors.NewHTTPError(400, "price must be zero or more")
	case objstore.ErrNotConfigured:
		return pkgErrors.NewHTTPError(503, "image upload is not configured")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
