// internal/handlers/auth.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/core/services"
	"github.com/sellerhub/opsdash-be/internal/handlers/middleware"
)

// AuthHandler handles login, logout and password changes
type AuthHandler struct {
	service      ports.SessionService
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service ports.SessionService, cookieName string, cookieSecure bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		logger:       logger.With(slog.String("handler", "auth")),
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		h.logger.ErrorContext(ctx, "login failed",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadGateway, "Login is temporarily unavailable")
		return
	}

	// The cookie carries the same bearer token so browser-driven navigations
	// (report downloads, image links) stay authenticated without a header.
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("user_type", string(result.UserType)))

	h.respondJSON(w, http.StatusOK, result)
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	if err := h.service.Logout(ctx, session.SessionID); err != nil {
		h.logger.ErrorContext(ctx, "logout failed",
			slog.String("session_id", session.SessionID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GetProfile handles GET /api/v1/auth/me
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":    session.UserID,
		"user_type":  session.UserType,
		"seller_id":  session.SellerID,
		"profile":    session.Profile,
		"expires_at": session.ExpiresAt,
	})
}

// UpdatePassword handles PUT /api/v1/auth/password
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdatePassword(ctx, session.SessionID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, ports.ErrUnauthorized) {
			// The session was invalidated; the client must log in again.
			h.respondError(w, http.StatusUnauthorized, "Session expired")
			return
		}

		h.logger.ErrorContext(ctx, "password update failed",
			slog.String("session_id", session.SessionID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}

// Helper methods

func (h *AuthHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *AuthHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request DTOs

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the login request
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// UpdatePasswordRequest represents the request body for password changes
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Validate validates the password change request
func (r *UpdatePasswordRequest) Validate() error {
	if r.OldPassword == "" {
		return fmt.Errorf("old_password is required")
	}
	if r.NewPassword == "" {
		return fmt.Errorf("new_password is required")
	}
	if len(r.NewPassword) < 8 {
		return fmt.Errorf("new_password must be at least 8 characters")
	}
	return nil
}
