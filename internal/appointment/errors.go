package appointment

import "errors"

// Domain-specific errors for the appointment package.
var (
	// ErrCalendarAuth marks a 401/403 from the calendar collaborator: the
	// bearer credential is expired or insufficient and the user must
	// re-authenticate.
	ErrCalendarAuth = errors.New("calendar authorization failed")

	// ErrCalendarUnavailable marks any other calendar failure (network,
	// non-2xx, malformed payload).
	ErrCalendarUnavailable = errors.New("calendar request failed")

	// ErrInvalidSchedule marks a schedule request whose date or time slot
	// does not parse.
	ErrInvalidSchedule = errors.New("invalid appointment date or time")
)
