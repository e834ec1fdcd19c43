package http

import (
	"scheduling-assistant/internal/assistant"
	pkgLog "scheduling-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Send(c interface{})
	List(c interface{})
}

type handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l pkgLog.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
