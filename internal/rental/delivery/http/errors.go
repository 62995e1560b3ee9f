package http

import (
	"errors"

	"disc-rental/internal/rental"
	pkgErrors "disc-rental/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var capErr *rental.CapacityError
	if errors.As(err, &capErr) {
		return pkgErrors.NewHTTPError(409, capErr.Error())
	}

	switch err {
	case rental.ErrRentalNotFound:
		return pkgErrors.NewHTTPError(404, "rental not found")
	case rental.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case rental.ErrItemUnavailable:
		return pkgErrors.NewHTTPError(409, "item is not available for rental")
	case rental.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "invalid rental status")
	case rental.ErrInvalidEndDate:
		return pkgErrors.NewHTTPError(400, "end date must be in the future")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
