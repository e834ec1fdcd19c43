package errors

import "fmt"

// HTTPError is an error carrying an HTTP status code, used by delivery
// layers to translate domain errors into transport responses.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.Status, e.Message)
}
