package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process session store for single-node deployments
// and tests. Safe for concurrent use.
type MemoryStore[Data any] struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session[Data]
	tokens   map[string]uuid.UUID
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore[Data any]() *MemoryStore[Data] {
	return &MemoryStore[Data]{
		sessions: make(map[uuid.UUID]Session[Data]),
		tokens:   make(map[string]uuid.UUID),
	}
}

// GetByID returns a copy of the stored session.
func (s *MemoryStore[Data]) GetByID(_ context.Context, id uuid.UUID) (*Session[Data], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sess, nil
}

// GetByToken resolves a token to its session. Rotated-away tokens miss.
func (s *MemoryStore[Data]) GetByToken(_ context.Context, token string) (*Session[Data], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.tokens[token]
	if !ok {
		return nil, ErrNotFound
	}
	sess, ok := s.sessions[id]
	if !ok || sess.Token != token {
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Save stores the session, replacing any previous version and dropping the
// stale token index entry after a rotation.
func (s *MemoryStore[Data]) Save(_ context.Context, sess *Session[Data]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.sessions[sess.ID]; ok && prev.Token != sess.Token {
		delete(s.tokens, prev.Token)
	}
	s.sessions[sess.ID] = *sess
	s.tokens[sess.Token] = sess.ID
	return nil
}

// Delete removes a session and its token index entry.
func (s *MemoryStore[Data]) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.tokens, sess.Token)
	delete(s.sessions, id)
	return nil
}

// DeleteExpired sweeps all expired sessions.
func (s *MemoryStore[Data]) DeleteExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, sess := range s.sessions {
		if sess.IsExpired() {
			delete(s.tokens, sess.Token)
			delete(s.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}
