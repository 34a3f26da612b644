package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/opsdash-be/internal/adapters/upstream"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/test/helpers"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return upstream.NewClient(upstream.Config{BaseURL: server.URL}, helpers.TestLogger())
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":        "tok-123",
			"upstream_session_id": "up-sess-1",
			"user_type":           "admin",
		})
	})

	creds, err := client.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", creds.AccessToken)
	assert.Equal(t, "admin", creds.UserType)
}

func TestClient_LoginRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Login(context.Background(), "x@example.com", "wrong")
	assert.ErrorIs(t, err, ports.ErrUnauthorized)
}

func TestClient_FetchList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "shipped", r.URL.Query().Get("status"))

		w.Write([]byte(`{"records": [{"id": 1}], "total_count": 41}`))
	})

	raw, err := client.FetchList(context.Background(), "tok-123", ports.ListRequest{
		Resource: "orders",
		Query:    map[string]string{"status": "shipped"},
		Page:     2,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"records": [{"id": 1}], "total_count": 41}`, string(raw))
}

func TestClient_FetchListExpiredToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.FetchList(context.Background(), "stale", ports.ListRequest{Resource: "orders"})
	assert.ErrorIs(t, err, ports.ErrUnauthorized)
}

func TestClient_FetchListServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchList(context.Background(), "tok", ports.ListRequest{Resource: "orders"})
	require.Error(t, err)

	var apiErr *upstream.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestClient_UpdatePassword(t *testing.T) {
	var received map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/account/update_password", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.UpdatePassword(context.Background(), "tok", "old-pass", "new-pass")
	require.NoError(t, err)
	assert.Equal(t, "old-pass", received["old_password"])
	assert.Equal(t, "new-pass", received["new_password"])
}

func TestClient_LogoutIgnoresUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	assert.NoError(t, client.Logout(context.Background(), "already-dead"))
}
