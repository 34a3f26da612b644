// internal/core/services/session.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/pkg/auth"
)

// ErrInvalidCredentials is returned for rejected logins.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionService manages dashboard login state. One login produces one
// server-side session holding the upstream access token plus one bearer
// token referencing it.
type SessionService struct {
	upstream ports.UpstreamClient
	sessions ports.SessionStore
	tokens   *auth.TokenService
	ttl      time.Duration
	logger   *slog.Logger
}

var _ ports.SessionService = (*SessionService)(nil)

// NewSessionService creates a new session service
func NewSessionService(upstream ports.UpstreamClient, sessions ports.SessionStore, tokens *auth.TokenService, ttl time.Duration, logger *slog.Logger) *SessionService {
	return &SessionService{
		upstream: upstream,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		logger:   logger.With(slog.String("service", "session")),
	}
}

// Login authenticates against the upstream API and creates a session.
func (s *SessionService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	creds, err := s.upstream.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, ports.ErrUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("upstream login failed: %w", err)
	}

	userType := domain.UserType(creds.UserType)
	now := time.Now()
	session := &domain.Session{
		SessionID:         uuid.New().String(),
		UserID:            email,
		UserType:          userType,
		SellerID:          creds.SellerID,
		AccessToken:       creds.AccessToken,
		UpstreamSessionID: creds.UpstreamSessionID,
		Profile:           creds.Profile,
		CreatedAt:         now,
		ExpiresAt:         now.Add(s.ttl),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, expiresAt, err := s.tokens.IssueToken(session)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("session_id", session.SessionID),
		slog.String("user_type", string(userType)))

	return &ports.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		UserType:  userType,
		SellerID:  creds.SellerID,
		Profile:   creds.Profile,
	}, nil
}

// Logout ends the upstream session and invalidates the dashboard session
// together with its dependent state. The session is removed even when the
// upstream call fails; a dangling upstream session expires on its own.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if err := s.upstream.Logout(ctx, session.AccessToken); err != nil {
		s.logger.WarnContext(ctx, "upstream logout failed",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
	}

	if err := s.sessions.Invalidate(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged out",
		slog.String("session_id", sessionID))

	return nil
}

// GetSession loads the session behind a validated token.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// UpdatePassword changes the upstream account password. An upstream
// credential rejection invalidates the session so the next request forces a
// re-login.
func (s *SessionService) UpdatePassword(ctx context.Context, sessionID, oldPassword, newPassword string) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.upstream.UpdatePassword(ctx, session.AccessToken, oldPassword, newPassword); err != nil {
		if errors.Is(err, ports.ErrUnauthorized) {
			if invErr := s.sessions.Invalidate(ctx, sessionID); invErr != nil {
				s.logger.WarnContext(ctx, "failed to invalidate rejected session",
					slog.String("error", invErr.Error()))
			}
			return ports.ErrUnauthorized
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.InfoContext(ctx, "password updated",
		slog.String("session_id", sessionID))

	return nil
}
