// internal/core/ports/upstream.go
package ports

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned when the upstream commerce API rejects the
// session's access token. Callers must invalidate the dashboard session and
// force a re-login.
var ErrUnauthorized = errors.New("upstream rejected credentials")

// UpstreamCredentials is the result of an upstream login.
type UpstreamCredentials struct {
	AccessToken       string            `json:"access_token"`
	UpstreamSessionID string            `json:"upstream_session_id"`
	UserType          string            `json:"user_type"`
	SellerID          string            `json:"seller_id,omitempty"`
	Profile           map[string]string `json:"profile,omitempty"`
}

// ListRequest describes an upstream list fetch.
type ListRequest struct {
	Resource string
	Query    map[string]string
	Page     int
	PageSize int
}

// UpstreamClient talks to the commerce platform's REST API on behalf of a
// dashboard session.
type UpstreamClient interface {
	Login(ctx context.Context, email, password string) (*UpstreamCredentials, error)
	Logout(ctx context.Context, token string) error
	FetchList(ctx context.Context, token string, req ListRequest) ([]byte, error)
	UpdatePassword(ctx context.Context, token, oldPassword, newPassword string) error
}
