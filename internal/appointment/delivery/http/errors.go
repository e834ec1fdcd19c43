package http

import (
	"errors"

	"scheduling-assistant/internal/appointment"
	pkgErrors "scheduling-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, appointment.ErrCalendarAuth):
		return pkgErrors.NewHTTPError(401, "Calendar access denied or expired. Please log out and sign in again to re-authorize.")
	case errors.Is(err, appointment.ErrCalendarUnavailable):
		return pkgErrors.NewHTTPError(502, "Failed to load your calendar. Please try refreshing the page.")
	case errors.Is(err, appointment.ErrInvalidSchedule):
		return pkgErrors.NewHTTPError(400, "Invalid appointment date or time.")
	default:
		return pkgErrors.NewHTTPError(500, "Something went wrong. Please try again.")
	}
}
