package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Manager handles the session lifecycle: creation, retrieval, privilege
// transitions and expiration. The touch interval throttles how often
// sessions are extended on access, reducing write load on the store.
type Manager[Data any] struct {
	store         Store[Data]
	ttl           time.Duration
	touchInterval time.Duration
}

// NewManager creates a session manager backed by the given store.
func NewManager[Data any](store Store[Data], opts ...Option) *Manager[Data] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Manager[Data]{
		store:         store,
		ttl:           cfg.TTL,
		touchInterval: cfg.TouchInterval,
	}
}

// New creates and persists a fresh anonymous session.
func (m *Manager[Data]) New(ctx context.Context, params NewSessionParams) (Session[Data], error) {
	sess, err := New[Data](params, m.ttl)
	if err != nil {
		return Session[Data]{}, err
	}
	if err := m.store.Save(ctx, &sess); err != nil {
		return Session[Data]{}, errors.Join(ErrSaveSession, err)
	}
	return sess, nil
}

// GetByID retrieves a session by ID and validates expiration.
func (m *Manager[Data]) GetByID(ctx context.Context, id uuid.UUID) (Session[Data], error) {
	sess, err := m.store.GetByID(ctx, id)
	if err != nil {
		return Session[Data]{}, err
	}
	if sess.IsExpired() {
		return Session[Data]{}, ErrExpired
	}
	return *sess, nil
}

// GetByToken retrieves a session by token and validates expiration.
func (m *Manager[Data]) GetByToken(ctx context.Context, token string) (Session[Data], error) {
	sess, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return Session[Data]{}, err
	}
	if sess.IsExpired() {
		return Session[Data]{}, ErrExpired
	}
	return *sess, nil
}

// Authenticate marks the session as password-authenticated for userID,
// rotates its token and persists it. Two-factor verification is still
// pending afterwards; see ConfirmTwoFactor.
func (m *Manager[Data]) Authenticate(ctx context.Context, sess Session[Data], userID uuid.UUID, data ...Data) (Session[Data], error) {
	if err := sess.Authenticate(userID, data...); err != nil {
		return Session[Data]{}, err
	}
	if err := m.store.Save(ctx, &sess); err != nil {
		return Session[Data]{}, errors.Join(ErrSaveSession, err)
	}
	return sess, nil
}

// ConfirmTwoFactor records a verified one-time code, rotates the token and
// persists the session.
func (m *Manager[Data]) ConfirmTwoFactor(ctx context.Context, sess Session[Data]) (Session[Data], error) {
	if err := sess.ConfirmTwoFactor(); err != nil {
		return Session[Data]{}, err
	}
	if err := m.store.Save(ctx, &sess); err != nil {
		return Session[Data]{}, errors.Join(ErrSaveSession, err)
	}
	return sess, nil
}

// Logout deletes the current session from the store and returns a fresh
// anonymous session for the same client.
func (m *Manager[Data]) Logout(ctx context.Context, sess Session[Data]) (Session[Data], error) {
	if err := m.Delete(ctx, sess.ID); err != nil {
		return Session[Data]{}, err
	}
	return m.New(ctx, NewSessionParams{IP: sess.IP, UserAgent: sess.UserAgent})
}

// Delete removes a session from the store. A missing session is not an error.
func (m *Manager[Data]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Join(ErrDeleteSession, err)
	}
	return nil
}

// Store persists a session according to its state. Deleted sessions are
// removed and ErrNotAuthenticated is returned so the transport clears its
// cookie. Live sessions are touched and saved only when modified.
func (m *Manager[Data]) Store(ctx context.Context, sess Session[Data]) error {
	if sess.IsDeleted() {
		if err := m.Delete(ctx, sess.ID); err != nil {
			return err
		}
		return ErrNotAuthenticated
	}

	sess.Touch(m.ttl, m.touchInterval)

	if sess.IsModified() {
		if err := m.store.Save(ctx, &sess); err != nil {
			return errors.Join(ErrSaveSession, err)
		}
	}

	return nil
}

// CleanupExpired removes all expired sessions from the store.
// Should be called periodically to prevent session table growth.
func (m *Manager[Data]) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// GetTTL returns the session time-to-live duration.
func (m *Manager[Data]) GetTTL() time.Duration {
	return m.ttl
}
