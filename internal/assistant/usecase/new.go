package usecase

import (
	"sync"

	"scheduling-assistant/internal/appointment"
	"scheduling-assistant/internal/assistant"
	"scheduling-assistant/internal/assistant/repository"
	"scheduling-assistant/pkg/gemini"
	pkgLog "scheduling-assistant/pkg/log"
)

type implUseCase struct {
	l            pkgLog.Logger
	gemini       gemini.IGemini
	appointments appointment.UseCase
	repo         repository.Repository

	mu    sync.Mutex
	inFly map[string]struct{}

	now func() string // today's date, YYYY-MM-DD
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	gem gemini.IGemini,
	appointments appointment.UseCase,
	repo repository.Repository,
) *implUseCase {
	return &implUseCase{
		l:            l,
		gemini:       gem,
		appointments: appointments,
		repo:         repo,
		inFly:        make(map[string]struct{}),
		now:          today,
	}
}

// acquire reserves the session's one processing slot. It reports false when
// a previous message is still in flight.
func (uc *implUseCase) acquire(sessionID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inFly[sessionID]; busy {
		return false
	}
	uc.inFly[sessionID] = struct{}{}
	return true
}

func (uc *implUseCase) release(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFly, sessionID)
}
