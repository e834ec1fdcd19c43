package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"scheduling-assistant/internal/appointment/repository"
	"scheduling-assistant/internal/model"
)

type sessionList struct {
	mu    sync.Mutex
	appts []model.Appointment
}

// Store is the in-memory, session-scoped appointment store. Lists live in
// an expiring LRU keyed by session ID so abandoned sessions are reclaimed.
type Store struct {
	mu    sync.Mutex
	lists *expirable.LRU[string, *sessionList]
}

var _ repository.Repository = (*Store)(nil)

// New creates a new in-memory store. TTL should match the session TTL so a
// list does not outlive its session.
func New(maxSessions int, ttl time.Duration) *Store {
	return &Store{
		lists: expirable.NewLRU[string, *sessionList](maxSessions, nil, ttl),
	}
}

func (s *Store) listFor(sessionID string) *sessionList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list, ok := s.lists.Get(sessionID); ok {
		return list
	}
	list := &sessionList{}
	s.lists.Add(sessionID, list)
	return list
}

// ReplaceAll swaps the session's list with the given appointments, sorted
// ascending by date.
func (s *Store) ReplaceAll(ctx context.Context, sc model.Scope, appts []model.Appointment) error {
	list := s.listFor(sc.SessionID)
	list.mu.Lock()
	defer list.mu.Unlock()

	list.appts = make([]model.Appointment, len(appts))
	copy(list.appts, appts)
	sortByDate(list.appts)
	return nil
}

// Insert adds one appointment, keeping date order.
func (s *Store) Insert(ctx context.Context, sc model.Scope, appt model.Appointment) error {
	list := s.listFor(sc.SessionID)
	list.mu.Lock()
	defer list.mu.Unlock()

	list.appts = append(list.appts, appt)
	sortByDate(list.appts)
	return nil
}

// ListAll returns a copy of the session's ordered list.
func (s *Store) ListAll(ctx context.Context, sc model.Scope) ([]model.Appointment, error) {
	list := s.listFor(sc.SessionID)
	list.mu.Lock()
	defer list.mu.Unlock()

	out := make([]model.Appointment, len(list.appts))
	copy(out, list.appts)
	return out, nil
}

func sortByDate(appts []model.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		return appts[i].Date.Before(appts[j].Date)
	})
}
