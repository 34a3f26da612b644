// internal/adapters/redis/draft_store.go
package redis_a

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

// DraftStore persists look-builder snapshots in Redis keyed by session. The
// TTL matches the session TTL so an abandoned draft disappears with its
// session.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.DraftStore = (*DraftStore)(nil)

// NewDraftStore creates a new draft store
func NewDraftStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *DraftStore {
	return &DraftStore{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "draft_store")),
	}
}

func draftKey(sessionID string) string {
	return BuildKey(PrefixDraft, sessionID)
}

// SaveSnapshot stores an encoded snapshot, refreshing the TTL.
func (s *DraftStore) SaveSnapshot(ctx context.Context, sessionID string, snapshot []byte) error {
	if err := s.client.Set(ctx, draftKey(sessionID), snapshot, s.ttl).Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to save draft snapshot",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis set error: %w", err)
	}

	s.logger.DebugContext(ctx, "draft snapshot saved",
		slog.String("session_id", sessionID),
		slog.Int("bytes", len(snapshot)))

	return nil
}

// LoadSnapshot returns the stored snapshot or ports.ErrDraftNotFound.
func (s *DraftStore) LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ports.ErrDraftNotFound
		}
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	return data, nil
}

// ClearSnapshot removes the session's snapshot. Clearing a missing snapshot
// is not an error.
func (s *DraftStore) ClearSnapshot(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}

	s.logger.DebugContext(ctx, "draft snapshot cleared",
		slog.String("session_id", sessionID))

	return nil
}
