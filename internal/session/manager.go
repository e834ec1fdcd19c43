package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"scheduling-assistant/internal/model"
)

// Session is the explicit session-scoped handle created at login. It carries
// the user profile and the calendar bearer token; nothing about the session
// lives in global state.
type Session struct {
	ID          string
	User        model.User
	AccessToken string
	CreatedAt   time.Time
}

// Scope returns the request scope for this session.
func (s *Session) Scope() model.Scope {
	return model.Scope{
		SessionID:   s.ID,
		UserEmail:   s.User.Email,
		AccessToken: s.AccessToken,
	}
}

// Manager tracks live sessions. Sessions expire after the configured TTL or
// when evicted by capacity; there is no persistence across restarts.
type Manager struct {
	sessions *expirable.LRU[string, *Session]
}

// NewManager creates a session manager holding at most maxEntries sessions,
// each valid for ttl.
func NewManager(maxEntries int, ttl time.Duration) *Manager {
	return &Manager{
		sessions: expirable.NewLRU[string, *Session](maxEntries, nil, ttl),
	}
}

// Create registers a new session for the given user and token.
func (m *Manager) Create(user model.User, accessToken string) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		User:        user,
		AccessToken: accessToken,
		CreatedAt:   time.Now(),
	}
	m.sessions.Add(s.ID, s)
	return s
}

// Get returns the session for the given ID, if it is still live.
func (m *Manager) Get(id string) (*Session, bool) {
	return m.sessions.Get(id)
}

// Revoke removes the session and returns it so the caller can revoke the
// upstream token.
func (m *Manager) Revoke(id string) (*Session, bool) {
	s, ok := m.sessions.Get(id)
	if ok {
		m.sessions.Remove(id)
	}
	return s, ok
}
