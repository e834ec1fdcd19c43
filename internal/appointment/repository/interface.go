package repository

import (
	"context"

	"scheduling-assistant/internal/model"
)

// Repository is the session-scoped appointment store. Implementations keep
// each session's list ordered ascending by date. The store is only ever
// written as the result of a successful calendar round trip.
type Repository interface {
	// ReplaceAll swaps the session's list with the given appointments.
	ReplaceAll(ctx context.Context, sc model.Scope, appts []model.Appointment) error

	// Insert adds one appointment, keeping date order.
	Insert(ctx context.Context, sc model.Scope, appt model.Appointment) error

	// ListAll returns a copy of the session's ordered list.
	ListAll(ctx context.Context, sc model.Scope) ([]model.Appointment, error)
}
