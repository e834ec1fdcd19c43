package gcalendar

import "time"

// Attendee is a calendar event participant.
type Attendee struct {
	DisplayName string
	Email       string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	ColorID     string
	HtmlLink    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Attendees   []Attendee
}

// ListUpcomingRequest is the input for listing upcoming events.
type ListUpcomingRequest struct {
	CalendarID string
	TimeMin    time.Time
	MaxResults int64
}

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}
