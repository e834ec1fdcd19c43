package appointment

import (
	"context"

	"scheduling-assistant/internal/model"
)

// UseCase defines the business logic interface for the appointment domain.
// All operations require a scope carrying a valid calendar bearer token.
type UseCase interface {
	// Refresh fetches upcoming events from the remote calendar, replaces the
	// session's appointment list, and returns it ordered by start time.
	Refresh(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Schedule books a one-hour appointment on the remote calendar and
	// inserts the server-reflected result into the session's list.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)

	// Stats summarizes the session's appointment list for dashboard views.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}
