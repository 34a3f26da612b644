// internal/core/services/look_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/core/services"
	"github.com/sellerhub/opsdash-be/test/helpers"
	"github.com/sellerhub/opsdash-be/test/mocks"
)

type lookFixture struct {
	repo        *mocks.MockLookRepository
	cache       *mocks.MockCacheRepository
	invalidator *mocks.MockCacheInvalidator
	service     *services.LookService
}

func newLookFixture(t *testing.T) *lookFixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLookRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	invalidator := mocks.NewMockCacheInvalidator(ctrl)

	return &lookFixture{
		repo:        repo,
		cache:       cache,
		invalidator: invalidator,
		service:     services.NewLookService(repo, cache, invalidator, helpers.TestLogger()),
	}
}

// passthroughGetOrSet makes the cache mock behave like a cold cache: the
// fetch function runs and its result is copied into dest.
func passthroughGetOrSet(ctx context.Context, key string, dest interface{}, fetch func() (interface{}, error), ttl time.Duration) error {
	value, err := fetch()
	if err != nil {
		return err
	}
	if look, ok := value.(*domain.Look); ok {
		*dest.(*domain.Look) = *look
	}
	return nil
}

func TestLookService_GetByID(t *testing.T) {
	lookID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(f *lookFixture)
		expectedError bool
		errorContains string
	}{
		{
			name: "cache miss loads from repository",
			setupMocks: func(f *lookFixture) {
				f.cache.EXPECT().
					GetOrSet(gomock.Any(), "look:"+lookID.String(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(passthroughGetOrSet)
				f.repo.EXPECT().
					FindByID(gomock.Any(), lookID).
					Return(helpers.CreateTestLook(func(l *domain.Look) {
						l.LookID = lookID
					}), nil)
			},
		},
		{
			name: "look not found",
			setupMocks: func(f *lookFixture) {
				f.cache.EXPECT().
					GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(passthroughGetOrSet)
				f.repo.EXPECT().
					FindByID(gomock.Any(), lookID).
					Return(nil, nil)
			},
			expectedError: true,
			errorContains: "look not found",
		},
		{
			name: "repository error",
			setupMocks: func(f *lookFixture) {
				f.cache.EXPECT().
					GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(passthroughGetOrSet)
				f.repo.EXPECT().
					FindByID(gomock.Any(), lookID).
					Return(nil, errors.New("connection refused"))
			},
			expectedError: true,
			errorContains: "failed to get look",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLookFixture(t)
			tt.setupMocks(f)

			look, err := f.service.GetByID(context.Background(), lookID)
			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, lookID, look.LookID)
		})
	}
}

func TestLookService_List(t *testing.T) {
	f := newLookFixture(t)

	looks := []*domain.Look{helpers.CreateTestLook(), helpers.CreateTestLook()}

	f.repo.EXPECT().
		FindAll(gomock.Any(), ports.LookQuery{
			SellerID: "seller-001",
			Status:   string(domain.LookStatusPublished),
			Limit:    20,
			Offset:   0,
		}).
		Return(looks, int64(45), nil)

	result, err := f.service.List(context.Background(), ports.LookListParams{
		SellerID: "seller-001",
		Status:   string(domain.LookStatusPublished),
	})
	require.NoError(t, err)
	assert.Len(t, result.Looks, 2)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)
	assert.Equal(t, int64(45), result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
}

func TestLookService_List_OffsetFromPage(t *testing.T) {
	f := newLookFixture(t)

	f.repo.EXPECT().
		FindAll(gomock.Any(), ports.LookQuery{Limit: 10, Offset: 20}).
		Return([]*domain.Look{}, int64(0), nil)

	result, err := f.service.List(context.Background(), ports.LookListParams{
		Page:     3,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 0, result.TotalPages)
}

func TestLookService_UpdateLook(t *testing.T) {
	lookID := uuid.New()

	tests := []struct {
		name          string
		look          *domain.Look
		setupMocks    func(f *lookFixture)
		expectedError bool
		errorContains string
	}{
		{
			name: "successful update invalidates cache",
			look: helpers.CreateTestLook(),
			setupMocks: func(f *lookFixture) {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(nil)
				f.invalidator.EXPECT().
					InvalidateLook(gomock.Any(), lookID.String(), "seller-001")
			},
		},
		{
			name: "validation failure skips repository",
			look: helpers.CreateTestLook(func(l *domain.Look) {
				l.Name = ""
			}),
			setupMocks:    func(f *lookFixture) {},
			expectedError: true,
			errorContains: "validation failed",
		},
		{
			name: "repository error",
			look: helpers.CreateTestLook(),
			setupMocks: func(f *lookFixture) {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(errors.New("deadlock detected"))
			},
			expectedError: true,
			errorContains: "failed to update look",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLookFixture(t)
			tt.setupMocks(f)

			err := f.service.UpdateLook(context.Background(), lookID, tt.look)
			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, lookID, tt.look.LookID)
		})
	}
}

func TestLookService_DeleteLook(t *testing.T) {
	lookID := uuid.New()

	tests := []struct {
		name          string
		permanent     bool
		setupMocks    func(f *lookFixture)
		expectedError bool
		errorContains string
	}{
		{
			name:      "soft delete by default",
			permanent: false,
			setupMocks: func(f *lookFixture) {
				f.repo.EXPECT().
					FindByID(gomock.Any(), lookID).
					Return(helpers.CreateTestLook(func(l *domain.Look) {
						l.LookID = lookID
					}), nil)
				f.repo.EXPECT().
					SoftDelete(gomock.Any(), lookID).
					Return(nil)
				f.invalidator.EXPECT().
					InvalidateLook(gomock.Any(), lookID.String(), "seller-001")
			},
		},
		{
			name:      "permanent delete",
			permanent: true,
			setupMocks: func(f *lookFixture) {
				f.repo.EXPECT().
					FindByID(gomock.Any(), lookID).
					Return(helpers.CreateTestLook(func(l *domain.Look) {
						l.LookID = lookID
					}), nil)
				f.repo.EXPECT().
					Delete(gomock.Any(), lookID).
					Return(nil)
				f.invalidator.EXPECT().
					InvalidateLook(gomock.Any(), lookID.String(), "seller-001")
			},
		},
		{
			name:      "look not found",
			permanent: false,
			setupMocks: func(f *lookFixture) {
				f.repo.EXPECT().
					FindByID(gomock.Any(), lookID).
					Return(nil, nil)
			},
			expectedError: true,
			errorContains: "look not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLookFixture(t)
			tt.setupMocks(f)

			err := f.service.DeleteLook(context.Background(), lookID, tt.permanent)
			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLookService_Publish(t *testing.T) {
	lookID := uuid.New()

	t.Run("draft look is published", func(t *testing.T) {
		f := newLookFixture(t)

		f.repo.EXPECT().
			FindByID(gomock.Any(), lookID).
			Return(helpers.CreateTestLook(func(l *domain.Look) {
				l.LookID = lookID
				l.Status = domain.LookStatusDraft
			}), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, look *domain.Look) error {
				assert.Equal(t, domain.LookStatusPublished, look.Status)
				return nil
			})
		f.invalidator.EXPECT().
			InvalidateLook(gomock.Any(), lookID.String(), "seller-001")

		require.NoError(t, f.service.Publish(context.Background(), lookID))
	})

	t.Run("already published is a no-op", func(t *testing.T) {
		f := newLookFixture(t)

		f.repo.EXPECT().
			FindByID(gomock.Any(), lookID).
			Return(helpers.CreateTestLook(func(l *domain.Look) {
				l.LookID = lookID
			}), nil)

		require.NoError(t, f.service.Publish(context.Background(), lookID))
	})
}
