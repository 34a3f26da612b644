package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

func newTestTokenService() *TokenService {
	return NewTokenService("test-secret-key-at-least-32-chars", 12*time.Hour, "opsdash-test")
}

func newTestSession() *domain.Session {
	return &domain.Session{
		SessionID:   "sess-1",
		UserID:      "user-1",
		UserType:    domain.UserTypeSeller,
		SellerID:    "seller-9",
		AccessToken: "upstream-token",
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(12 * time.Hour),
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := newTestTokenService()
	session := newTestSession()

	token, expiresAt, err := svc.IssueToken(session)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, domain.UserTypeSeller, claims.UserType)
	assert.Equal(t, "seller-9", claims.SellerID)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestIssueToken_CapsAtSessionExpiry(t *testing.T) {
	svc := newTestTokenService()
	session := newTestSession()
	session.ExpiresAt = time.Now().Add(time.Hour)

	_, expiresAt, err := svc.IssueToken(session)
	require.NoError(t, err)
	assert.WithinDuration(t, session.ExpiresAt, expiresAt, time.Second)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestTokenService()
	token, _, err := svc.IssueToken(newTestSession())
	require.NoError(t, err)

	other := NewTokenService("another-secret-that-does-not-match", 12*time.Hour, "opsdash-test")
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewTokenService("test-secret-key-at-least-32-chars", -time.Minute, "opsdash-test")
	session := newTestSession()
	session.ExpiresAt = time.Time{}

	token, _, err := svc.IssueToken(session)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestTokenService()
	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_AdminWithoutSeller(t *testing.T) {
	svc := newTestTokenService()
	session := newTestSession()
	session.UserType = domain.UserTypeAdmin
	session.SellerID = ""

	token, _, err := svc.IssueToken(session)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeAdmin, claims.UserType)
	assert.Empty(t, claims.SellerID)
}
