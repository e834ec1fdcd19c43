package usecase

import (
	"fmt"

	"scheduling-assistant/internal/appointment"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/gcalendar"
)

const untitledAppointment = "No Title"

// appointmentFromEvent maps a calendar event to the domain Appointment.
// Title defaults when absent, attendee display names are preferred over
// emails, and the category comes from the color table.
func appointmentFromEvent(ev gcalendar.Event) model.Appointment {
	title := ev.Summary
	if title == "" {
		title = untitledAppointment
	}

	var attendees []string
	for _, a := range ev.Attendees {
		name := a.DisplayName
		if name == "" {
			name = a.Email
		}
		if name != "" {
			attendees = append(attendees, name)
		}
	}

	return model.Appointment{
		ID:          ev.ID,
		Title:       title,
		Date:        ev.Start,
		Attendees:   attendees,
		Category:    model.CategoryFromColorID(ev.ColorID),
		Description: ev.Description,
	}
}

// wrapCalendarError tags a calendar failure with the matching domain
// sentinel while keeping the upstream error inspectable.
func wrapCalendarError(err error) error {
	if gcalendar.IsAuthError(err) {
		return fmt.Errorf("%w: %w", appointment.ErrCalendarAuth, err)
	}
	return fmt.Errorf("%w: %w", appointment.ErrCalendarUnavailable, err)
}
