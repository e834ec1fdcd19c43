package http

import (
	"scheduling-assistant/internal/appointment"
	pkgLog "scheduling-assistant/pkg/log"
)

// Handler is the public interface for the appointment HTTP delivery layer.
type Handler interface {
	List(c interface{})
	Stats(c interface{})
}

type handler struct {
	l  pkgLog.Logger
	uc appointment.UseCase
}

// New creates a new HTTP handler for the appointment domain.
func New(l pkgLog.Logger, uc appointment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
