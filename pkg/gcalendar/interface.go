package gcalendar

import "context"

// ICalendar defines the calendar operations used by the service. Every call
// takes the session's bearer access token explicitly; no client-global
// credential state is kept.
type ICalendar interface {
	// ListUpcoming fetches events starting at or after TimeMin, expanded to
	// single occurrences and ordered by start time by the remote service.
	ListUpcoming(ctx context.Context, accessToken string, req ListUpcomingRequest) ([]Event, error)

	// CreateEvent creates an event and returns it as reflected back by the
	// remote service, including the server-assigned identifier.
	CreateEvent(ctx context.Context, accessToken string, req CreateEventRequest) (*Event, error)
}
