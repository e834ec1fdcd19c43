package middleware

import (
	"scheduling-assistant/internal/session"
	pkgLog "scheduling-assistant/pkg/log"
)

type Middleware struct {
	l        pkgLog.Logger
	sessions *session.Manager
	chatRate *rateLimiter
}

func New(l pkgLog.Logger, sessions *session.Manager, chatRatePerMin int) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
		chatRate: newRateLimiter(chatRatePerMin),
	}
}
