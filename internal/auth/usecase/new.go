package usecase

import (
	"scheduling-assistant/internal/auth"
	"scheduling-assistant/internal/session"
	"scheduling-assistant/pkg/googleauth"
	pkgLog "scheduling-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	identity googleauth.IIdentity
	sessions *session.Manager
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, identity googleauth.IIdentity, sessions *session.Manager) *implUseCase {
	return &implUseCase{
		l:        l,
		identity: identity,
		sessions: sessions,
	}
}
