package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"scheduling-assistant/internal/assistant"
	"scheduling-assistant/internal/assistant/repository"
	"scheduling-assistant/internal/model"
)

type transcript struct {
	mu       sync.Mutex
	messages []model.ChatMessage
}

// Store is the in-memory, session-scoped transcript store. Transcripts live
// in an expiring LRU keyed by session ID so abandoned sessions are
// reclaimed. A fresh transcript starts with the greeting message.
type Store struct {
	mu          sync.Mutex
	transcripts *expirable.LRU[string, *transcript]
}

var _ repository.Repository = (*Store)(nil)

// New creates a new in-memory transcript store. TTL should match the
// session TTL so a transcript does not outlive its session.
func New(maxSessions int, ttl time.Duration) *Store {
	return &Store{
		transcripts: expirable.NewLRU[string, *transcript](maxSessions, nil, ttl),
	}
}

func (s *Store) transcriptFor(sessionID string) *transcript {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tr, ok := s.transcripts.Get(sessionID); ok {
		return tr
	}
	tr := &transcript{
		messages: []model.ChatMessage{{
			ID:     assistant.GreetingMessageID,
			Text:   assistant.GreetingText,
			Sender: model.SenderAI,
		}},
	}
	s.transcripts.Add(sessionID, tr)
	return tr
}

// Append adds one message to the session's transcript.
func (s *Store) Append(ctx context.Context, sc model.Scope, msg model.ChatMessage) error {
	tr := s.transcriptFor(sc.SessionID)
	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.messages = append(tr.messages, msg)
	return nil
}

// List returns a copy of the session's transcript, oldest first.
func (s *Store) List(ctx context.Context, sc model.Scope) ([]model.ChatMessage, error) {
	tr := s.transcriptFor(sc.SessionID)
	tr.mu.Lock()
	defer tr.mu.Unlock()

	out := make([]model.ChatMessage, len(tr.messages))
	copy(out, tr.messages)
	return out, nil
}
