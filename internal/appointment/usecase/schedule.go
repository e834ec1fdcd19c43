package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scheduling-assistant/internal/appointment"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/gcalendar"
)

const scheduleLayout = "2006-01-02T15:04"

// Schedule creates a one-hour calendar event and records the mapped
// appointment in the session store.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, ip appointment.ScheduleInput) (appointment.ScheduleOutput, error) {
	start, err := time.ParseInLocation(scheduleLayout, ip.Date+"T"+ip.Time, uc.location)
	if err != nil {
		uc.l.Warnf(ctx, "appointment.Schedule: bad date/time %q %q: %v", ip.Date, ip.Time, err)
		return appointment.ScheduleOutput{}, fmt.Errorf("%w: %v", appointment.ErrInvalidSchedule, err)
	}

	description := ""
	if len(ip.Attendees) > 0 {
		description = "Appointment with: " + strings.Join(ip.Attendees, ", ")
	}

	created, err := uc.calendar.CreateEvent(ctx, sc.AccessToken, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     ip.Title,
		Description: description,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "appointment.Schedule: create failed for session %s: %v", sc.SessionID, err)
		return appointment.ScheduleOutput{}, wrapCalendarError(err)
	}

	appt := appointmentFromEvent(*created)
	if err := uc.repo.Insert(ctx, sc, appt); err != nil {
		return appointment.ScheduleOutput{}, err
	}

	uc.l.Infof(ctx, "appointment.Schedule: session %s created event %s", sc.SessionID, created.ID)
	return appointment.ScheduleOutput{Appointment: appt}, nil
}
