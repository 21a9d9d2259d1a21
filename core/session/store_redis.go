package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisSessionPrefix = "session:"
	redisTokenPrefix   = "session:token:"
)

// RedisStore persists sessions in Redis with the session TTL applied as the
// key TTL, so expired sessions vanish without an explicit sweep. Tokens are
// kept in a secondary index key pointing at the session ID.
type RedisStore[Data any] struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
// See integration/database/redis for client construction with retry logic.
func NewRedisStore[Data any](client *redis.Client) *RedisStore[Data] {
	return &RedisStore[Data]{client: client}
}

// GetByID fetches and decodes a session.
func (s *RedisStore[Data]) GetByID(ctx context.Context, id uuid.UUID) (*Session[Data], error) {
	payload, err := s.client.Get(ctx, redisSessionPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var sess Session[Data]
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// GetByToken resolves the token index, then loads the session. A session
// whose token has since rotated does not match.
func (s *RedisStore[Data]) GetByToken(ctx context.Context, token string) (*Session[Data], error) {
	rawID, err := s.client.Get(ctx, redisTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrNotFound
	}

	sess, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Token != token {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Save writes the session and its token index with TTLs matching the
// session expiry. Stale token index entries from rotations expire on their
// own; GetByToken rejects them in the meantime.
func (s *RedisStore[Data]) Save(ctx context.Context, sess *Session[Data]) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return ErrExpired
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisSessionPrefix+sess.ID.String(), payload, ttl)
	pipe.Set(ctx, redisTokenPrefix+sess.Token, sess.ID.String(), ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Delete removes the session and its token index entry.
func (s *RedisStore[Data]) Delete(ctx context.Context, id uuid.UUID) error {
	sess, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisSessionPrefix+id.String())
	pipe.Del(ctx, redisTokenPrefix+sess.Token)
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteExpired is a no-op: Redis evicts expired keys natively.
func (s *RedisStore[Data]) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}
