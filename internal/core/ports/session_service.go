// internal/core/ports/session_service.go
package ports

import (
	"context"
	"time"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

// LoginResult is what the auth handler hands back to the browser. The
// upstream access token never leaves the server; the bearer token only
// references the session.
type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	UserType  domain.UserType   `json:"user_type"`
	SellerID  string            `json:"seller_id,omitempty"`
	Profile   map[string]string `json:"profile,omitempty"`
}

// SessionService manages dashboard login state against the upstream API.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	UpdatePassword(ctx context.Context, sessionID, oldPassword, newPassword string) error
}
