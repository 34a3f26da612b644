// internal/handlers/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/pkg/auth"
	"github.com/sellerhub/opsdash-be/internal/pkg/logger"
)

type sessionContextKey struct{}

// SessionAuth validates the bearer token and resolves the server-side session
// behind it. The token only references the session; revoking the session in
// the store is enough to lock the token out.
func SessionAuth(tokens *auth.TokenService, sessions ports.SessionStore, cookieName string, l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r, cookieName)
			if tokenString == "" {
				unauthorized(w, "Missing credentials")
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					unauthorized(w, "Token expired")
					return
				}
				unauthorized(w, "Invalid token")
				return
			}

			session, err := sessions.Get(r.Context(), claims.SessionID)
			if err != nil {
				if errors.Is(err, ports.ErrSessionNotFound) {
					unauthorized(w, "Session expired")
					return
				}
				l.ErrorContext(r.Context(), "failed to load session",
					slog.String("session_id", claims.SessionID),
					slog.String("error", err.Error()))
				http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, session)
			ctx = context.WithValue(ctx, logger.ContextKeySessionID, session.SessionID)
			ctx = context.WithValue(ctx, logger.ContextKeyUserID, session.UserID)
			if session.SellerID != "" {
				ctx = context.WithValue(ctx, logger.ContextKeySellerID, session.SellerID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin sessions. It must run after SessionAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok || session.UserType != domain.UserTypeAdmin {
			forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext returns the authenticated session set by SessionAuth.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*domain.Session)
	return session, ok
}

// WithSession inserts a session into the context. Test helper for exercising
// handlers without running the full middleware chain.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// bearerToken extracts the token from the Authorization header, falling back
// to the session cookie for browser navigations that can't set headers.
func bearerToken(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimPrefix(header, "Bearer ")
		}
		return ""
	}
	if cookieName != "" {
		if cookie, err := r.Cookie(cookieName); err == nil {
			return cookie.Value
		}
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

func forbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
