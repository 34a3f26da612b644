// internal/adapters/redis/session_store.go
package redis_a

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

// SessionStore persists dashboard sessions in Redis. Invalidation also drops
// the session's draft snapshot and view state so a fresh login never sees
// leftovers from the previous one.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a new session store
func NewSessionStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

func sessionKey(sessionID string) string {
	return BuildKey(PrefixSession, sessionID)
}

// Save stores the session with the configured TTL.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("invalid session: %w", err)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}

	s.logger.DebugContext(ctx, "session saved",
		slog.String("session_id", session.SessionID),
		slog.String("user_type", string(session.UserType)))

	return nil
}

// Get returns the session or ports.ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ports.ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if session.Expired() {
		_ = s.Invalidate(ctx, sessionID)
		return nil, ports.ErrSessionNotFound
	}

	return &session, nil
}

// Invalidate removes the session and its dependent per-session state.
func (s *SessionStore) Invalidate(ctx context.Context, sessionID string) error {
	keys := []string{
		sessionKey(sessionID),
		BuildKey(PrefixDraft, sessionID),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}

	// View state keys are per page; drop them by pattern.
	pattern := BuildKey(PrefixViewState, sessionID) + ":*"
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	var stateKeys []string
	for iter.Next(ctx) {
		stateKeys = append(stateKeys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan error: %w", err)
	}
	if len(stateKeys) > 0 {
		if err := s.client.Del(ctx, stateKeys...).Err(); err != nil {
			return fmt.Errorf("redis del error: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "session invalidated",
		slog.String("session_id", sessionID))

	return nil
}

// Touch extends the session's TTL.
func (s *SessionStore) Touch(ctx context.Context, sessionID string) error {
	ok, err := s.client.Expire(ctx, sessionKey(sessionID), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis expire error: %w", err)
	}
	if !ok {
		return ports.ErrSessionNotFound
	}

	return nil
}
