package assistant

import (
	"context"

	"scheduling-assistant/internal/model"
)

// UseCase defines the business logic interface for the conversation
// controller.
type UseCase interface {
	// HandleMessage appends the user's message to the transcript, runs the
	// extraction round trip, and appends exactly one assistant reply. While
	// a previous message is still being processed for the same session it
	// returns ErrBusy without touching the transcript.
	HandleMessage(ctx context.Context, sc model.Scope, text string) (HandleOutput, error)

	// Transcript returns the session's message list, oldest first.
	Transcript(ctx context.Context, sc model.Scope) (TranscriptOutput, error)
}
