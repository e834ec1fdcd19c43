package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	// ErrBusy is returned while a previous message for the same session is
	// still being processed. The transcript is not modified.
	ErrBusy = errors.New("a message is already being processed")

	// ErrEmptyMessage is returned for blank input.
	ErrEmptyMessage = errors.New("message text is empty")
)
