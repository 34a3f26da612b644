// internal/core/domain/session.go
package domain

import (
	"fmt"
	"time"
)

// Session is the server-side record of a logged-in dashboard user. It holds
// what the old client kept in localStorage: the upstream access token, the
// upstream session id, the user type and assorted profile fields. Logout
// deletes it wholesale.
type Session struct {
	SessionID         string            `json:"session_id"`
	UserID            string            `json:"user_id"`
	UserType          UserType          `json:"user_type"`
	SellerID          string            `json:"seller_id,omitempty"`
	AccessToken       string            `json:"access_token"`
	UpstreamSessionID string            `json:"upstream_session_id,omitempty"`
	Profile           map[string]string `json:"profile,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	ExpiresAt         time.Time         `json:"expires_at"`
}

// Validate checks the minimum fields a usable session needs.
func (s *Session) Validate() error {
	if s.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	if s.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if s.UserType != UserTypeAdmin && s.UserType != UserTypeSeller {
		return fmt.Errorf("user_type must be admin or seller: %q", s.UserType)
	}
	if s.AccessToken == "" {
		return fmt.Errorf("access_token is required")
	}
	if s.UserType == UserTypeSeller && s.SellerID == "" {
		return fmt.Errorf("seller sessions require a seller_id")
	}
	return nil
}

// Expired reports whether the session passed its expiry.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
