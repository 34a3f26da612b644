package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/sellerhub/opsdash-be/internal/adapters/redis_adapter"
	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/test/helpers"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestDraftStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t)
	store := redis_a.NewDraftStore(client, time.Hour, helpers.TestLogger())

	snapshot := []byte(`{"schema_version":1,"id":"temp-1","name":"Sofa Set"}`)
	require.NoError(t, store.SaveSnapshot(ctx, "sess-1", snapshot))

	loaded, err := store.LoadSnapshot(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)

	require.NoError(t, store.ClearSnapshot(ctx, "sess-1"))

	_, err = store.LoadSnapshot(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrDraftNotFound)
}

func TestDraftStore_ExpiresWithTTL(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)
	store := redis_a.NewDraftStore(client, time.Minute, helpers.TestLogger())

	require.NoError(t, store.SaveSnapshot(ctx, "sess-1", []byte(`{}`)))

	mr.FastForward(2 * time.Minute)

	_, err := store.LoadSnapshot(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrDraftNotFound)
}

func TestViewStateStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t)
	store := redis_a.NewViewStateStore(client, time.Hour, helpers.TestLogger())

	store.Save(ctx, "sess-1", ports.ViewState{
		PageKey:      "orders",
		ScrollOffset: 1420,
		RestoreWhen:  []string{"back", "reload"},
	})

	state, ok := store.Load(ctx, "sess-1", "orders", "back")
	require.True(t, ok)
	assert.Equal(t, 1420, state.ScrollOffset)
}

func TestViewStateStore_DisqualifiedNavigationDropsState(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t)
	store := redis_a.NewViewStateStore(client, time.Hour, helpers.TestLogger())

	store.Save(ctx, "sess-1", ports.ViewState{
		PageKey:      "orders",
		ScrollOffset: 1420,
		RestoreWhen:  []string{"back"},
	})

	// A fresh navigation does not qualify and clears the saved position.
	_, ok := store.Load(ctx, "sess-1", "orders", "push")
	assert.False(t, ok)

	// Even a qualifying navigation now finds nothing.
	_, ok = store.Load(ctx, "sess-1", "orders", "back")
	assert.False(t, ok)
}

func TestViewStateStore_StorageFailureIsSilent(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)
	store := redis_a.NewViewStateStore(client, time.Hour, helpers.TestLogger())

	mr.Close()

	// Neither call may panic or surface an error.
	store.Save(ctx, "sess-1", ports.ViewState{PageKey: "orders", ScrollOffset: 10})
	_, ok := store.Load(ctx, "sess-1", "orders", "back")
	assert.False(t, ok)
}

func TestViewStateStore_CorruptStateDiscarded(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t)
	store := redis_a.NewViewStateStore(client, time.Hour, helpers.TestLogger())

	require.NoError(t, client.Set(ctx, "viewstate:sess-1:orders", "{{{corrupt", 0).Err())

	_, ok := store.Load(ctx, "sess-1", "orders", "back")
	assert.False(t, ok)
}

func testSession(id string) *domain.Session {
	return &domain.Session{
		SessionID:   id,
		UserID:      "user-1",
		UserType:    domain.UserTypeSeller,
		SellerID:    "seller-1",
		AccessToken: "tok",
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t)
	store := redis_a.NewSessionStore(client, time.Hour, helpers.TestLogger())

	require.NoError(t, store.Save(ctx, testSession("sess-1")))

	session, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "seller-1", session.SellerID)
	assert.Equal(t, domain.UserTypeSeller, session.UserType)
}

func TestSessionStore_GetUnknownSession(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t)
	store := redis_a.NewSessionStore(client, time.Hour, helpers.TestLogger())

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_InvalidateDropsDependentState(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t)

	sessions := redis_a.NewSessionStore(client, time.Hour, helpers.TestLogger())
	drafts := redis_a.NewDraftStore(client, time.Hour, helpers.TestLogger())
	states := redis_a.NewViewStateStore(client, time.Hour, helpers.TestLogger())

	require.NoError(t, sessions.Save(ctx, testSession("sess-1")))
	require.NoError(t, drafts.SaveSnapshot(ctx, "sess-1", []byte(`{}`)))
	states.Save(ctx, "sess-1", ports.ViewState{PageKey: "orders", ScrollOffset: 99})

	require.NoError(t, sessions.Invalidate(ctx, "sess-1"))

	_, err := sessions.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = drafts.LoadSnapshot(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrDraftNotFound)

	_, ok := states.Load(ctx, "sess-1", "orders", "back")
	assert.False(t, ok)
}

func TestSessionStore_Touch(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)
	store := redis_a.NewSessionStore(client, time.Minute, helpers.TestLogger())

	require.NoError(t, store.Save(ctx, testSession("sess-1")))

	mr.FastForward(45 * time.Second)
	require.NoError(t, store.Touch(ctx, "sess-1"))

	mr.FastForward(45 * time.Second)
	_, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)

	assert.ErrorIs(t, store.Touch(ctx, "missing"), ports.ErrSessionNotFound)
}
