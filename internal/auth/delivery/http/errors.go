package http

import (
	"errors"

	"scheduling-assistant/internal/auth"
	pkgErrors "scheduling-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		return pkgErrors.NewHTTPError(401, "Google sign-in failed. Please try again.")
	case errors.Is(err, auth.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(401, "Your session has expired. Please sign in again.")
	default:
		return pkgErrors.NewHTTPError(500, "Something went wrong. Please try again.")
	}
}
