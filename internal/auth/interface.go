package auth

import (
	"context"

	"scheduling-assistant/internal/model"
)

// UseCase defines the business logic interface for sign-in and sign-out.
type UseCase interface {
	// Login validates the Google access token, creates a session, and
	// returns the session token with the user profile.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Logout ends the session and revokes the Google token best-effort.
	Logout(ctx context.Context, sessionID string) error

	// Me returns the profile for a live session.
	Me(ctx context.Context, sessionID string) (model.User, error)
}
