// internal/core/domain/look_test.go
package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

func validLook() *domain.Look {
	return &domain.Look{
		SellerID:     "seller-1",
		Name:         "Autumn Window",
		MainImageKey: "looks/autumn.jpg",
		ProductIDs:   []string{"p1", "p2"},
		Markers: []domain.Marker{
			{ProductID: "p1", X: 0.2, Y: 0.3},
		},
	}
}

func TestLook_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*domain.Look)
		expectedError string
	}{
		{
			name:   "valid_look",
			mutate: func(l *domain.Look) {},
		},
		{
			name:          "missing_seller",
			mutate:        func(l *domain.Look) { l.SellerID = "" },
			expectedError: "seller_id is required",
		},
		{
			name:          "missing_name",
			mutate:        func(l *domain.Look) { l.Name = "" },
			expectedError: "name is required",
		},
		{
			name:          "missing_image",
			mutate:        func(l *domain.Look) { l.MainImageKey = "" },
			expectedError: "main_image_key is required",
		},
		{
			name: "marker_out_of_bounds",
			mutate: func(l *domain.Look) {
				l.Markers = []domain.Marker{{ProductID: "p1", X: 1.2, Y: 0.5}}
			},
			expectedError: "coordinates must be within",
		},
		{
			name: "marker_for_unselected_product",
			mutate: func(l *domain.Look) {
				l.Markers = []domain.Marker{{ProductID: "p9", X: 0.5, Y: 0.5}}
			},
			expectedError: "unselected product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			look := validLook()
			tt.mutate(look)

			err := look.Validate()
			if tt.expectedError == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			}
		})
	}
}

func TestLook_ValidateDefaultsStatus(t *testing.T) {
	look := validLook()
	require.NoError(t, look.Validate())
	assert.Equal(t, domain.LookStatusDraft, look.Status)
}

func TestLook_PrepareForStorage(t *testing.T) {
	look := validLook()
	look.PrepareForStorage()

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", look.LookID.String())
	assert.False(t, look.CreatedAt.IsZero())
	assert.False(t, look.UpdatedAt.IsZero())
	assert.Equal(t, domain.LookStatusDraft, look.Status)

	// A second call keeps the id and created_at stable.
	id, created := look.LookID, look.CreatedAt
	look.PrepareForStorage()
	assert.Equal(t, id, look.LookID)
	assert.Equal(t, created, look.CreatedAt)
}
