// internal/core/ports/draft_store.go
package ports

import (
	"context"
	"errors"
)

// ErrDraftNotFound is returned when no snapshot exists for the session.
var ErrDraftNotFound = errors.New("draft not found")

// DraftStore persists encoded look-builder snapshots keyed by session, so a
// draft survives page transitions and browser refreshes but not session
// expiry.
type DraftStore interface {
	SaveSnapshot(ctx context.Context, sessionID string, snapshot []byte) error
	LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error)
	ClearSnapshot(ctx context.Context, sessionID string) error
}
