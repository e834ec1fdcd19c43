package gcalendar

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// APIError carries the HTTP status and message of a failed calendar call.
// The message is drawn from the remote error payload when parseable, else
// the caller-supplied fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calendar API error %d: %s", e.Status, e.Message)
}

// IsAuthError reports whether err is an authorization failure (401/403),
// meaning the bearer credential is expired or insufficient.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}

// wrapAPIError converts a googleapi error into an APIError. Transport errors
// without a status are wrapped with the fallback message.
func wrapAPIError(err error, fallback string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		message := gerr.Message
		if message == "" {
			message = fallback
		}
		return &APIError{Status: gerr.Code, Message: message}
	}
	return fmt.Errorf("%s: %w", fallback, err)
}
