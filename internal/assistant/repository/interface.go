package repository

import (
	"context"

	"scheduling-assistant/internal/model"
)

// Repository is the session-scoped chat transcript store. Transcripts are
// append-only and start seeded with the assistant greeting.
type Repository interface {
	// Append adds one message to the session's transcript.
	Append(ctx context.Context, sc model.Scope, msg model.ChatMessage) error

	// List returns a copy of the session's transcript, oldest first.
	List(ctx context.Context, sc model.Scope) ([]model.ChatMessage, error)
}
