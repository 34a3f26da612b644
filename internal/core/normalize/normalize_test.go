// internal/core/normalize/normalize_test.go
package normalize_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/opsdash-be/internal/core/normalize"
)

func TestMapToTable_WrapperKeys(t *testing.T) {
	// Every wrapper key the upstream API is known to use must yield the same
	// wrapped array.
	for _, key := range []string{"record", "records", "data", "items", "results", "list", "rows"} {
		t.Run(key, func(t *testing.T) {
			raw := fmt.Sprintf(`{"%s": [{"id": 1}, {"id": 2}]}`, key)

			result, err := normalize.MapToTable([]byte(raw), normalize.Options{})
			require.NoError(t, err)

			assert.True(t, result.Success)
			assert.Equal(t, 2, result.TotalCount)
			require.Len(t, result.Data, 2)
			assert.Equal(t, float64(1), result.Data[0]["id"])
			assert.Equal(t, float64(2), result.Data[1]["id"])
		})
	}
}

func TestMapToTable_RootArray(t *testing.T) {
	result, err := normalize.MapToTable([]byte(`[{"sku": "a"}, {"sku": "b"}]`), normalize.Options{})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, "a", result.Data[0]["sku"])
}

func TestMapToTable_NestedEnvelope(t *testing.T) {
	raw := `{"data": {"items": [{"id": 7}], "page": 1}}`

	result, err := normalize.MapToTable([]byte(raw), normalize.Options{})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Equal(t, float64(7), result.Data[0]["id"])
}

func TestMapToTable_ErrorEnvelope(t *testing.T) {
	raw := `{"status_code": 400, "message": "invalid seller id"}`

	result, err := normalize.MapToTable([]byte(raw), normalize.Options{})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "invalid seller id", result.Error)
	assert.Empty(t, result.Data)
	assert.NotNil(t, result.Data, "data must be an empty slice, not nil")
}

func TestMapToTable_StatusVariants(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		expectedSuccess bool
		expectedError   string
	}{
		{
			name:            "numeric_status_ok",
			raw:             `{"status": 200, "data": []}`,
			expectedSuccess: true,
		},
		{
			name:            "numeric_status_error",
			raw:             `{"status": 500, "error": "boom"}`,
			expectedSuccess: false,
			expectedError:   "boom",
		},
		{
			name:            "string_status_error",
			raw:             `{"status": "failed", "detail": "upstream down"}`,
			expectedSuccess: false,
			expectedError:   "upstream down",
		},
		{
			name:            "success_flag_false_without_message",
			raw:             `{"success": false}`,
			expectedSuccess: false,
			expectedError:   "request failed",
		},
		{
			name:            "no_status_signal",
			raw:             `{"records": []}`,
			expectedSuccess: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := normalize.MapToTable([]byte(tt.raw), normalize.Options{})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedSuccess, result.Success)
			assert.Equal(t, tt.expectedError, result.Error)
		})
	}
}

func TestMapToTable_TotalCount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{
			name:     "explicit_total_count",
			raw:      `{"records": [{"id": 1}], "total_count": 42}`,
			expected: 42,
		},
		{
			name:     "camel_case_total",
			raw:      `{"data": [{"id": 1}], "totalCount": 10}`,
			expected: 10,
		},
		{
			name:     "pagination_block",
			raw:      `{"items": [{"id": 1}], "pagination": {"total": 99, "page": 2}}`,
			expected: 99,
		},
		{
			name:     "falls_back_to_row_count",
			raw:      `{"rows": [{"id": 1}, {"id": 2}, {"id": 3}]}`,
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := normalize.MapToTable([]byte(tt.raw), normalize.Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.TotalCount)
		})
	}
}

func TestMapToTable_Reshaping(t *testing.T) {
	raw := `{"records": [
		{"product_name": "Chair", "price": 30},
		{"product_name": "Table", "price": 120},
		{"product_name": "lamp", "price": 15}
	]}`

	result, err := normalize.MapToTable([]byte(raw), normalize.Options{
		Rename: map[string]string{"product_name": "name"},
		Transform: map[string]func(any) any{
			"name": func(v any) any {
				s, _ := v.(string)
				return strings.ToUpper(s)
			},
		},
		Filter: func(row normalize.Row) bool {
			price, _ := row["price"].(float64)
			return price >= 20
		},
		SortBy:   "price",
		SortDesc: true,
	})
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "TABLE", result.Data[0]["name"])
	assert.Equal(t, float64(120), result.Data[0]["price"])
	assert.Equal(t, "CHAIR", result.Data[1]["name"])
	_, hasOld := result.Data[0]["product_name"]
	assert.False(t, hasOld)
}

func TestMapToTable_ScalarElementsDropped(t *testing.T) {
	result, err := normalize.MapToTable([]byte(`{"list": [1, "two", {"id": 3}]}`), normalize.Options{})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Equal(t, float64(3), result.Data[0]["id"])
}

func TestMapToTable_Strict(t *testing.T) {
	_, err := normalize.MapToTable([]byte(`{"unexpected": true}`), normalize.Options{Strict: true})
	require.Error(t, err)

	result, err := normalize.MapToTable([]byte(`{"unexpected": true}`), normalize.Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Data)
}

func TestMapToTable_InvalidJSON(t *testing.T) {
	result, err := normalize.MapToTable([]byte(`not json at all`), normalize.Options{})
	require.Error(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
}

func TestMapToTable_MetaCollectsScalars(t *testing.T) {
	raw := `{"records": [], "request_id": "r-1", "cached": true}`

	result, err := normalize.MapToTable([]byte(raw), normalize.Options{})
	require.NoError(t, err)

	require.NotNil(t, result.Meta)
	assert.Equal(t, "r-1", result.Meta["request_id"])
	assert.Equal(t, true, result.Meta["cached"])
}
