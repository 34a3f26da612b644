// internal/adapters/redis/viewstate.go
package redis_a

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

// ViewStateStore keeps per-session list positions in Redis. Every operation
// swallows storage errors: a lost scroll position degrades to loading the
// list from the top, never to a failed request.
type ViewStateStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.ViewStateStore = (*ViewStateStore)(nil)

// NewViewStateStore creates a new view state store
func NewViewStateStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ViewStateStore {
	return &ViewStateStore{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "viewstate_store")),
	}
}

func viewStateKey(sessionID, pageKey string) string {
	return BuildKey(PrefixViewState, sessionID, pageKey)
}

// Save stores the state. Failures are logged and dropped.
func (s *ViewStateStore) Save(ctx context.Context, sessionID string, state ports.ViewState) {
	if state.PageKey == "" {
		return
	}
	if state.SavedAtUnix == 0 {
		state.SavedAtUnix = time.Now().Unix()
	}

	data, err := json.Marshal(state)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode view state",
			slog.String("page_key", state.PageKey),
			slog.String("error", err.Error()))
		return
	}

	if err := s.client.Set(ctx, viewStateKey(sessionID, state.PageKey), data, s.ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "failed to save view state",
			slog.String("page_key", state.PageKey),
			slog.String("error", err.Error()))
	}
}

// Load returns the saved state when the navigation kind qualifies for
// restoration. RestoreWhen empty means restore on any navigation.
func (s *ViewStateStore) Load(ctx context.Context, sessionID, pageKey, navigationKind string) (ports.ViewState, bool) {
	data, err := s.client.Get(ctx, viewStateKey(sessionID, pageKey)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.WarnContext(ctx, "failed to load view state",
				slog.String("page_key", pageKey),
				slog.String("error", err.Error()))
		}
		return ports.ViewState{}, false
	}

	var state ports.ViewState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.WarnContext(ctx, "corrupt view state discarded",
			slog.String("page_key", pageKey),
			slog.String("error", err.Error()))
		s.Clear(ctx, sessionID, pageKey)
		return ports.ViewState{}, false
	}

	if len(state.RestoreWhen) > 0 && !slices.Contains(state.RestoreWhen, navigationKind) {
		// Navigation kind disqualifies restoration; the stale position is
		// dropped so the next visit starts from the top.
		s.Clear(ctx, sessionID, pageKey)
		return ports.ViewState{}, false
	}

	return state, true
}

// Clear removes the saved state. Failures are logged and dropped.
func (s *ViewStateStore) Clear(ctx context.Context, sessionID, pageKey string) {
	if err := s.client.Del(ctx, viewStateKey(sessionID, pageKey)).Err(); err != nil {
		s.logger.WarnContext(ctx, "failed to clear view state",
			slog.String("page_key", pageKey),
			slog.String("error", err.Error()))
	}
}
