// internal/handlers/looks_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/handlers"
	"github.com/sellerhub/opsdash-be/internal/handlers/middleware"
	"github.com/sellerhub/opsdash-be/test/helpers"
	"github.com/sellerhub/opsdash-be/test/mocks"
)

type lookHandlerFixture struct {
	looks   *mocks.MockLookService
	drafts  *mocks.MockDraftService
	storage *mocks.MockStorageClient
	handler *handlers.LookHandler
}

func newLookHandlerFixture(t *testing.T) *lookHandlerFixture {
	ctrl := gomock.NewController(t)
	f := &lookHandlerFixture{
		looks:   mocks.NewMockLookService(ctrl),
		drafts:  mocks.NewMockDraftService(ctrl),
		storage: mocks.NewMockStorageClient(ctrl),
	}
	f.handler = handlers.NewLookHandler(f.looks, f.drafts, f.storage, helpers.TestLogger())
	return f
}

// authedRequest builds a request carrying the given session, matching what
// the auth middleware injects.
func authedRequest(method, target string, body interface{}, session *domain.Session) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if session == nil {
		return req
	}
	return req.WithContext(middleware.WithSession(req.Context(), session))
}

func TestLookHandler_ListLooks(t *testing.T) {
	t.Run("seller is scoped to own tenant", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()

		f.looks.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, params ports.LookListParams) (*ports.LookListResult, error) {
				assert.Equal(t, session.SellerID, params.SellerID)
				return &ports.LookListResult{Looks: []*domain.Look{}, Page: 1, PageSize: 20}, nil
			})

		// A seller trying to read another tenant's looks still gets their own.
		req := authedRequest(http.MethodGet, "/api/v1/looks?seller_id=seller-999", nil, session)
		rec := httptest.NewRecorder()

		f.handler.ListLooks(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin may scope by seller_id", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession(func(s *domain.Session) {
			s.UserType = domain.UserTypeAdmin
			s.SellerID = ""
		})

		f.looks.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, params ports.LookListParams) (*ports.LookListResult, error) {
				assert.Equal(t, "seller-042", params.SellerID)
				return &ports.LookListResult{Looks: []*domain.Look{}, Page: 1, PageSize: 20}, nil
			})

		req := authedRequest(http.MethodGet, "/api/v1/looks?seller_id=seller-042", nil, session)
		rec := httptest.NewRecorder()

		f.handler.ListLooks(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("pagination is clamped", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()

		f.looks.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, params ports.LookListParams) (*ports.LookListResult, error) {
				assert.Equal(t, 100, params.PageSize)
				assert.Equal(t, 3, params.Page)
				return &ports.LookListResult{}, nil
			})

		req := authedRequest(http.MethodGet, "/api/v1/looks?page=3&limit=500", nil, session)
		rec := httptest.NewRecorder()

		f.handler.ListLooks(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLookHandler_GetLook(t *testing.T) {
	t.Run("returns own look", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()
		look := helpers.CreateTestLook(func(l *domain.Look) {
			l.SellerID = session.SellerID
		})

		f.looks.EXPECT().GetByID(gomock.Any(), look.LookID).Return(look, nil)

		req := authedRequest(http.MethodGet, "/api/v1/looks/"+look.LookID.String(), nil, session)
		req.SetPathValue("id", look.LookID.String())
		rec := httptest.NewRecorder()

		f.handler.GetLook(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.Look
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, look.LookID, got.LookID)
	})

	t.Run("another tenant's look reads as not found", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()
		look := helpers.CreateTestLook(func(l *domain.Look) {
			l.SellerID = "seller-999"
		})

		f.looks.EXPECT().GetByID(gomock.Any(), look.LookID).Return(look, nil)

		req := authedRequest(http.MethodGet, "/api/v1/looks/"+look.LookID.String(), nil, session)
		req.SetPathValue("id", look.LookID.String())
		rec := httptest.NewRecorder()

		f.handler.GetLook(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()

		req := authedRequest(http.MethodGet, "/api/v1/looks/not-a-uuid", nil, session)
		req.SetPathValue("id", "not-a-uuid")
		rec := httptest.NewRecorder()

		f.handler.GetLook(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown look", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()
		lookID := uuid.New()

		f.looks.EXPECT().
			GetByID(gomock.Any(), lookID).
			Return(nil, fmt.Errorf("look not found: %s", lookID))

		req := authedRequest(http.MethodGet, "/api/v1/looks/"+lookID.String(), nil, session)
		req.SetPathValue("id", lookID.String())
		rec := httptest.NewRecorder()

		f.handler.GetLook(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLookHandler_UpdateLook(t *testing.T) {
	t.Run("valid update", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()
		look := helpers.CreateTestLook(func(l *domain.Look) {
			l.SellerID = session.SellerID
		})

		f.looks.EXPECT().GetByID(gomock.Any(), look.LookID).Return(look, nil)
		f.looks.EXPECT().
			UpdateLook(gomock.Any(), look.LookID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, updated *domain.Look) error {
				assert.Equal(t, "Renamed look", updated.Name)
				assert.Equal(t, look.SellerID, updated.SellerID)
				assert.Equal(t, look.MainImageKey, updated.MainImageKey)
				return nil
			})

		body := map[string]interface{}{
			"name":        "Renamed look",
			"product_ids": look.ProductIDs,
			"markers":     look.Markers,
		}
		req := authedRequest(http.MethodPut, "/api/v1/looks/"+look.LookID.String(), body, session)
		req.SetPathValue("id", look.LookID.String())
		rec := httptest.NewRecorder()

		f.handler.UpdateLook(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()
		look := helpers.CreateTestLook(func(l *domain.Look) {
			l.SellerID = session.SellerID
		})

		f.looks.EXPECT().GetByID(gomock.Any(), look.LookID).Return(look, nil)

		body := map[string]interface{}{"product_ids": []string{"p1"}}
		req := authedRequest(http.MethodPut, "/api/v1/looks/"+look.LookID.String(), body, session)
		req.SetPathValue("id", look.LookID.String())
		rec := httptest.NewRecorder()

		f.handler.UpdateLook(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "name is required")
	})
}

func TestLookHandler_DeleteLook(t *testing.T) {
	t.Run("seller cannot force permanent delete", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()
		look := helpers.CreateTestLook(func(l *domain.Look) {
			l.SellerID = session.SellerID
		})

		f.looks.EXPECT().GetByID(gomock.Any(), look.LookID).Return(look, nil)
		f.looks.EXPECT().DeleteLook(gomock.Any(), look.LookID, false).Return(nil)

		req := authedRequest(http.MethodDelete, "/api/v1/looks/"+look.LookID.String()+"?permanent=true", nil, session)
		req.SetPathValue("id", look.LookID.String())
		rec := httptest.NewRecorder()

		f.handler.DeleteLook(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin permanent delete", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession(func(s *domain.Session) {
			s.UserType = domain.UserTypeAdmin
			s.SellerID = ""
		})
		look := helpers.CreateTestLook()

		f.looks.EXPECT().GetByID(gomock.Any(), look.LookID).Return(look, nil)
		f.looks.EXPECT().DeleteLook(gomock.Any(), look.LookID, true).Return(nil)

		req := authedRequest(http.MethodDelete, "/api/v1/looks/"+look.LookID.String()+"?permanent=true", nil, session)
		req.SetPathValue("id", look.LookID.String())
		rec := httptest.NewRecorder()

		f.handler.DeleteLook(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLookHandler_DraftWizard(t *testing.T) {
	t.Run("start add", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()
		draft := domain.NewAddDraft(session.SellerID)

		f.drafts.EXPECT().
			StartAdd(gomock.Any(), session.SessionID, session.SellerID).
			Return(draft, nil)

		req := authedRequest(http.MethodPost, "/api/v1/looks/draft", nil, session)
		rec := httptest.NewRecorder()

		f.handler.StartAddDraft(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got domain.LookDraft
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, domain.ModeAdd, got.Mode)
		assert.True(t, got.IsTemp())
	})

	t.Run("resume with no draft", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()

		f.drafts.EXPECT().
			Resume(gomock.Any(), session.SessionID).
			Return(nil, ports.ErrDraftNotFound)

		req := authedRequest(http.MethodGet, "/api/v1/looks/draft", nil, session)
		rec := httptest.NewRecorder()

		f.handler.ResumeDraft(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("out of order step conflicts", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()

		f.drafts.EXPECT().
			SelectProducts(gomock.Any(), session.SessionID, []string{"p1"}).
			Return(nil, fmt.Errorf("%w: cannot select products at step empty", domain.ErrInvalidTransition))

		body := map[string]interface{}{"product_ids": []string{"p1"}}
		req := authedRequest(http.MethodPut, "/api/v1/looks/draft/products", body, session)
		rec := httptest.NewRecorder()

		f.handler.SelectDraftProducts(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("attach image verifies the upload exists", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()

		f.storage.EXPECT().Exists(gomock.Any(), "looks/seller-001/img.jpg").Return(false, nil)

		body := map[string]string{"file_key": "looks/seller-001/img.jpg"}
		req := authedRequest(http.MethodPut, "/api/v1/looks/draft/image", body, session)
		rec := httptest.NewRecorder()

		f.handler.AttachDraftImage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "not found in storage")
	})

	t.Run("image upload rejects non-images", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()

		body := map[string]string{"file_name": "malware.exe", "content_type": "application/octet-stream"}
		req := authedRequest(http.MethodPost, "/api/v1/looks/draft/image-upload", body, session)
		rec := httptest.NewRecorder()

		f.handler.RequestDraftImageUpload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("submit returns the published look", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()
		look := helpers.CreateTestLook(func(l *domain.Look) {
			l.SellerID = session.SellerID
			l.Status = domain.LookStatusPublished
		})

		f.drafts.EXPECT().Submit(gomock.Any(), session.SessionID).Return(look, nil)

		req := authedRequest(http.MethodPost, "/api/v1/looks/draft/submit", nil, session)
		rec := httptest.NewRecorder()

		f.handler.SubmitDraft(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got domain.Look
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, domain.LookStatusPublished, got.Status)
	})

	t.Run("cancel", func(t *testing.T) {
		f := newLookHandlerFixture(t)
		session := helpers.CreateTestSession()

		f.drafts.EXPECT().Cancel(gomock.Any(), session.SessionID).Return(nil)

		req := authedRequest(http.MethodDelete, "/api/v1/looks/draft", nil, session)
		rec := httptest.NewRecorder()

		f.handler.CancelDraft(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
