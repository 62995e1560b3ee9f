package http

import (
	"disc-rental/internal/auth"
	pkgErrors "disc-rental/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
