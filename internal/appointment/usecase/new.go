package usecase

import (
	"time"

	"scheduling-assistant/internal/appointment"
	"scheduling-assistant/internal/appointment/repository"
	"scheduling-assistant/pkg/gcalendar"
	pkgLog "scheduling-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	calendar   gcalendar.ICalendar
	repo       repository.Repository
	calendarID string
	maxResults int64
	timezone   string
	location   *time.Location
}

var _ appointment.UseCase = (*implUseCase)(nil)

// New creates a new appointment UseCase instance.
func New(
	l pkgLog.Logger,
	calendar gcalendar.ICalendar,
	repo repository.Repository,
	calendarID string,
	maxResults int64,
	timezone string,
) *implUseCase {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
		timezone = "UTC"
	}
	return &implUseCase{
		l:          l,
		calendar:   calendar,
		repo:       repo,
		calendarID: calendarID,
		maxResults: maxResults,
		timezone:   timezone,
		location:   loc,
	}
}
