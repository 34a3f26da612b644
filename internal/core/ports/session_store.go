// internal/core/ports/session_store.go
package ports

import (
	"context"
	"errors"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists dashboard sessions. Invalidate must also drop the
// session's dependent state (draft snapshots, view state) so a re-login
// starts clean.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Invalidate(ctx context.Context, sessionID string) error
	Touch(ctx context.Context, sessionID string) error
}
