// internal/pkg/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrMissingSessionID = errors.New("missing session_id in claims")
)

// Claims binds a bearer token to a server-side session. The token carries
// only routing facts; the upstream access token stays in Redis and never
// reaches the browser.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string          `json:"session_id"`
	UserType  domain.UserType `json:"user_type"`
	SellerID  string          `json:"seller_id,omitempty"`
}

// TokenService issues and validates dashboard session tokens.
type TokenService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret string, expiration time.Duration, issuer string) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		expiration: expiration,
		issuer:     issuer,
	}
}

// IssueToken signs a token for the given session.
func (s *TokenService) IssueToken(session *domain.Session) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiration)
	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(expiresAt) {
		expiresAt = session.ExpiresAt
	}

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   session.UserID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		SessionID: session.SessionID,
		UserType:  session.UserType,
		SellerID:  session.SellerID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ValidateToken parses and validates a session token.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.SessionID == "" {
		return nil, ErrMissingSessionID
	}
	if claims.UserType != domain.UserTypeAdmin && claims.UserType != domain.UserTypeSeller {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
