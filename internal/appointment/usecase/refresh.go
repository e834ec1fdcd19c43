package usecase

import (
	"context"
	"time"

	"scheduling-assistant/internal/appointment"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/gcalendar"
)

// Refresh fetches upcoming events and replaces the session's appointment
// list with the mapped result. The remote service orders by start time, so
// the list is stored as returned.
func (uc *implUseCase) Refresh(ctx context.Context, sc model.Scope) (appointment.ListOutput, error) {
	events, err := uc.calendar.ListUpcoming(ctx, sc.AccessToken, gcalendar.ListUpcomingRequest{
		CalendarID: uc.calendarID,
		TimeMin:    time.Now(),
		MaxResults: uc.maxResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "appointment.Refresh: list failed for session %s: %v", sc.SessionID, err)
		return appointment.ListOutput{}, wrapCalendarError(err)
	}

	appts := make([]model.Appointment, 0, len(events))
	for _, ev := range events {
		appts = append(appts, appointmentFromEvent(ev))
	}

	if err := uc.repo.ReplaceAll(ctx, sc, appts); err != nil {
		return appointment.ListOutput{}, err
	}

	uc.l.Infof(ctx, "appointment.Refresh: session %s loaded %d appointments", sc.SessionID, len(appts))
	return appointment.ListOutput{Appointments: appts}, nil
}
