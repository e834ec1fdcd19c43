package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	// ErrInvalidToken marks an access token the identity provider rejected.
	ErrInvalidToken = errors.New("access token rejected")

	// ErrSessionNotFound marks a session that is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
)
