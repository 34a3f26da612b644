// internal/handlers/auth_test.go
package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/core/services"
	"github.com/sellerhub/opsdash-be/internal/handlers"
	"github.com/sellerhub/opsdash-be/test/helpers"
	"github.com/sellerhub/opsdash-be/test/mocks"
)

const testCookie = "opsdash_session"

func newAuthHandlerFixture(t *testing.T) (*mocks.MockSessionService, *handlers.AuthHandler) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSessionService(ctrl)
	handler := handlers.NewAuthHandler(service, testCookie, false, helpers.TestLogger())
	return service, handler
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login sets session cookie", func(t *testing.T) {
		service, handler := newAuthHandlerFixture(t)

		service.EXPECT().
			Login(gomock.Any(), "seller@example.com", "hunter22").
			Return(&ports.LoginResult{
				Token:     "bearer-token-xyz",
				ExpiresAt: time.Now().Add(12 * time.Hour),
				UserType:  domain.UserTypeSeller,
				SellerID:  "seller-001",
			}, nil)

		body := map[string]string{"email": "seller@example.com", "password": "hunter22"}
		req := authedRequest(http.MethodPost, "/api/v1/auth/login", body, nil)
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "bearer-token-xyz")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, testCookie, cookies[0].Name)
		assert.Equal(t, "bearer-token-xyz", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		service, handler := newAuthHandlerFixture(t)

		service.EXPECT().
			Login(gomock.Any(), "seller@example.com", "wrong").
			Return(nil, services.ErrInvalidCredentials)

		body := map[string]string{"email": "seller@example.com", "password": "wrong"}
		req := authedRequest(http.MethodPost, "/api/v1/auth/login", body, nil)
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("upstream outage", func(t *testing.T) {
		service, handler := newAuthHandlerFixture(t)

		service.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("upstream login failed: connection refused"))

		body := map[string]string{"email": "seller@example.com", "password": "hunter22"}
		req := authedRequest(http.MethodPost, "/api/v1/auth/login", body, nil)
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, handler := newAuthHandlerFixture(t)

		body := map[string]string{"email": "seller@example.com"}
		req := authedRequest(http.MethodPost, "/api/v1/auth/login", body, nil)
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "password is required")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("logout clears the cookie", func(t *testing.T) {
		service, handler := newAuthHandlerFixture(t)
		session := helpers.CreateTestSession()

		service.EXPECT().Logout(gomock.Any(), session.SessionID).Return(nil)

		req := authedRequest(http.MethodPost, "/api/v1/auth/logout", nil, session)
		rec := httptest.NewRecorder()

		handler.Logout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, testCookie, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("logout without session", func(t *testing.T) {
		_, handler := newAuthHandlerFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		rec := httptest.NewRecorder()

		handler.Logout(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	t.Run("forwards the change", func(t *testing.T) {
		service, handler := newAuthHandlerFixture(t)
		session := helpers.CreateTestSession()

		service.EXPECT().
			UpdatePassword(gomock.Any(), session.SessionID, "old-pass", "new-pass-123").
			Return(nil)

		body := map[string]string{"old_password": "old-pass", "new_password": "new-pass-123"}
		req := authedRequest(http.MethodPut, "/api/v1/auth/password", body, session)
		rec := httptest.NewRecorder()

		handler.UpdatePassword(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("short password", func(t *testing.T) {
		_, handler := newAuthHandlerFixture(t)
		session := helpers.CreateTestSession()

		body := map[string]string{"old_password": "old-pass", "new_password": "short"}
		req := authedRequest(http.MethodPut, "/api/v1/auth/password", body, session)
		rec := httptest.NewRecorder()

		handler.UpdatePassword(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stale session maps to 401", func(t *testing.T) {
		service, handler := newAuthHandlerFixture(t)
		session := helpers.CreateTestSession()

		service.EXPECT().
			UpdatePassword(gomock.Any(), session.SessionID, "old-pass", "new-pass-123").
			Return(ports.ErrUnauthorized)

		body := map[string]string{"old_password": "old-pass", "new_password": "new-pass-123"}
		req := authedRequest(http.MethodPut, "/api/v1/auth/password", body, session)
		rec := httptest.NewRecorder()

		handler.UpdatePassword(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
