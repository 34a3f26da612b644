// internal/core/services/catalog_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/normalize"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/core/services"
	"github.com/sellerhub/opsdash-be/test/helpers"
	"github.com/sellerhub/opsdash-be/test/mocks"
)

type catalogFixture struct {
	upstream *mocks.MockUpstreamClient
	sessions *mocks.MockSessionStore
	cache    *mocks.MockCacheRepository
	service  *services.CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockUpstreamClient(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	return &catalogFixture{
		upstream: upstream,
		sessions: sessions,
		cache:    cache,
		service:  services.NewCatalogService(upstream, sessions, cache, helpers.TestLogger()),
	}
}

func TestCatalogService_List_NormalizesUpstreamPage(t *testing.T) {
	f := newCatalogFixture(t)
	session := helpers.CreateTestSession()

	f.sessions.EXPECT().
		Get(gomock.Any(), session.SessionID).
		Return(session, nil)
	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.upstream.EXPECT().
		FetchList(gomock.Any(), session.AccessToken, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req ports.ListRequest) ([]byte, error) {
			// Seller sessions are always scoped to their own data.
			assert.Equal(t, "seller-001", req.Query["seller_id"])
			return []byte(`{"success":true,"total_count":37,"data":{"items":[
				{"order_id":"ord-1","amount":120.5},
				{"order_id":"ord-2","amount":89.0}
			]}}`), nil
		})
	f.cache.EXPECT().
		SetWithTTL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := f.service.List(context.Background(), session.SessionID, ports.ListRequest{
		Resource: "orders",
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, 37, result.TotalCount)
	assert.Equal(t, "ord-1", result.Data[0]["order_id"])
}

func TestCatalogService_List_AdminSeesUnscopedData(t *testing.T) {
	f := newCatalogFixture(t)
	session := helpers.CreateTestSession(func(s *domain.Session) {
		s.UserType = domain.UserTypeAdmin
		s.SellerID = ""
	})

	f.sessions.EXPECT().
		Get(gomock.Any(), session.SessionID).
		Return(session, nil)
	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.upstream.EXPECT().
		FetchList(gomock.Any(), session.AccessToken, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req ports.ListRequest) ([]byte, error) {
			_, scoped := req.Query["seller_id"]
			assert.False(t, scoped)
			return []byte(`{"records":[{"id":1}]}`), nil
		})
	f.cache.EXPECT().
		SetWithTTL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := f.service.List(context.Background(), session.SessionID, ports.ListRequest{
		Resource: "sellers",
	})
	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
}

func TestCatalogService_List_CacheHitSkipsUpstream(t *testing.T) {
	f := newCatalogFixture(t)
	session := helpers.CreateTestSession()

	cached := normalize.Result{
		Data:       []normalize.Row{{"order_id": "ord-1"}},
		TotalCount: 1,
		Success:    true,
	}

	f.sessions.EXPECT().
		Get(gomock.Any(), session.SessionID).
		Return(session, nil)
	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) error {
			*dest.(*normalize.Result) = cached
			return nil
		})

	result, err := f.service.List(context.Background(), session.SessionID, ports.ListRequest{
		Resource: "orders",
	})
	require.NoError(t, err)
	assert.Equal(t, cached, result)
}

func TestCatalogService_List_UpstreamRejectionInvalidatesSession(t *testing.T) {
	f := newCatalogFixture(t)
	session := helpers.CreateTestSession()

	f.sessions.EXPECT().
		Get(gomock.Any(), session.SessionID).
		Return(session, nil)
	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.upstream.EXPECT().
		FetchList(gomock.Any(), session.AccessToken, gomock.Any()).
		Return(nil, ports.ErrUnauthorized)
	f.sessions.EXPECT().
		Invalidate(gomock.Any(), session.SessionID).
		Return(nil)

	_, err := f.service.List(context.Background(), session.SessionID, ports.ListRequest{
		Resource: "orders",
	})
	assert.ErrorIs(t, err, ports.ErrUnauthorized)
}

func TestCatalogService_List_FailedEnvelopeIsNotCached(t *testing.T) {
	f := newCatalogFixture(t)
	session := helpers.CreateTestSession()

	f.sessions.EXPECT().
		Get(gomock.Any(), session.SessionID).
		Return(session, nil)
	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.upstream.EXPECT().
		FetchList(gomock.Any(), session.AccessToken, gomock.Any()).
		Return([]byte(`{"success":false,"message":"rate limited"}`), nil)

	result, err := f.service.List(context.Background(), session.SessionID, ports.ListRequest{
		Resource: "orders",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "rate limited", result.Error)
}

func TestCatalogService_List_UnknownSession(t *testing.T) {
	f := newCatalogFixture(t)

	f.sessions.EXPECT().
		Get(gomock.Any(), "gone").
		Return(nil, ports.ErrSessionNotFound)

	_, err := f.service.List(context.Background(), "gone", ports.ListRequest{Resource: "orders"})
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}
