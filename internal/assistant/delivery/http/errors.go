package http

import (
	"errors"

	"scheduling-assistant/internal/assistant"
	pkgErrors "scheduling-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrBusy):
		return pkgErrors.NewHTTPError(409, "I'm still working on your previous message. One moment, please.")
	case errors.Is(err, assistant.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "Message text is required.")
	default:
		return pkgErrors.NewHTTPError(500, "Something went wrong. Please try again.")
	}
}
