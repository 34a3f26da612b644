// internal/handlers/catalog_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellerhub/opsdash-be/internal/core/normalize"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/handlers"
	"github.com/sellerhub/opsdash-be/test/helpers"
	"github.com/sellerhub/opsdash-be/test/mocks"
)

func newCatalogHandlerFixture(t *testing.T) (*mocks.MockCatalogService, *handlers.CatalogHandler) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCatalogService(ctrl)
	handler := handlers.NewCatalogHandler(service, helpers.TestLogger())
	return service, handler
}

func TestCatalogHandler_List(t *testing.T) {
	t.Run("forwards filters and pagination", func(t *testing.T) {
		service, handler := newCatalogHandlerFixture(t)
		session := helpers.CreateTestSession()

		service.EXPECT().
			List(gomock.Any(), session.SessionID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, req ports.ListRequest) (normalize.Result, error) {
				assert.Equal(t, "products", req.Resource)
				assert.Equal(t, 2, req.Page)
				assert.Equal(t, 50, req.PageSize)
				assert.Equal(t, "dresses", req.Query["category"])
				return normalize.Result{
					Success:    true,
					Data:       []normalize.Row{{"id": "p1"}},
					TotalCount: 1,
				}, nil
			})

		req := authedRequest(http.MethodGet, "/api/v1/catalog/products?page=2&limit=50&category=dresses", nil, session)
		req.SetPathValue("resource", "products")
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var result normalize.Result
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.True(t, result.Success)
		assert.Len(t, result.Data, 1)
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, handler := newCatalogHandlerFixture(t)
		session := helpers.CreateTestSession()

		req := authedRequest(http.MethodGet, "/api/v1/catalog/invoices", nil, session)
		req.SetPathValue("resource", "invoices")
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("expired session maps to 401", func(t *testing.T) {
		service, handler := newCatalogHandlerFixture(t)
		session := helpers.CreateTestSession()

		service.EXPECT().
			List(gomock.Any(), session.SessionID, gomock.Any()).
			Return(normalize.Result{}, ports.ErrUnauthorized)

		req := authedRequest(http.MethodGet, "/api/v1/catalog/orders", nil, session)
		req.SetPathValue("resource", "orders")
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("failed upstream envelope still renders", func(t *testing.T) {
		service, handler := newCatalogHandlerFixture(t)
		session := helpers.CreateTestSession()

		service.EXPECT().
			List(gomock.Any(), session.SessionID, gomock.Any()).
			Return(normalize.Result{Success: false, Error: "rate limited"}, nil)

		req := authedRequest(http.MethodGet, "/api/v1/catalog/orders", nil, session)
		req.SetPathValue("resource", "orders")
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "rate limited")
	})
}
