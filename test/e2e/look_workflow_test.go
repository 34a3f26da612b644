//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sellerhub/opsdash-be/internal/adapters/db"
	redis_a "github.com/sellerhub/opsdash-be/internal/adapters/redis_adapter"
	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/services"
	"github.com/sellerhub/opsdash-be/internal/handlers"
	"github.com/sellerhub/opsdash-be/internal/handlers/middleware"
	"github.com/sellerhub/opsdash-be/test/helpers"
)

// memoryStorage is an in-process stand-in for object storage. Presigned URLs
// are fake; the wizard test writes the image bytes in directly, the same way
// a browser would PUT to the real presigned URL.
type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (m *memoryStorage) Upload(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	content, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = content
	return "memory://" + key, nil
}

func (m *memoryStorage) Download(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", key)
	}
	return content, nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryStorage) GetPresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "memory://signed/" + key, nil
}

func (m *memoryStorage) GenerateUploadPresignedURL(_ context.Context, key string, _ string, _ time.Duration) (string, error) {
	return "memory://upload/" + key, nil
}

func (m *memoryStorage) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for key := range m.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (m *memoryStorage) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

type LookWorkflowE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
	storage   *memoryStorage
	session   *domain.Session
}

func (s *LookWorkflowE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())
	s.storage = newMemoryStorage()
	s.session = helpers.CreateTestSession()

	s.server = s.startTestServer()
	s.client = &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *LookWorkflowE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *LookWorkflowE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

// startTestServer wires real services against the containerized database and
// miniredis, with a fixed authenticated session instead of the login flow.
func (s *LookWorkflowE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()

	cache := redis_a.NewCache(s.testRedis.Client, 5*time.Minute, logger)
	invalidator := redis_a.NewInvalidator(cache, logger)
	draftStore := redis_a.NewDraftStore(s.testRedis.Client, time.Hour, logger)
	viewStateStore := redis_a.NewViewStateStore(s.testRedis.Client, time.Hour, logger)

	lookRepo := db.NewLookRepository(s.testDB.Database, logger)
	lookService := services.NewLookService(lookRepo, cache, invalidator, logger)
	draftService := services.NewDraftService(draftStore, lookRepo, invalidator, logger)

	lookHandler := handlers.NewLookHandler(lookService, draftService, s.storage, logger)
	viewStateHandler := handlers.NewViewStateHandler(viewStateStore, logger)

	withSession := func(h http.HandlerFunc) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r.WithContext(middleware.WithSession(r.Context(), s.session)))
		})
	}

	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/looks/draft", withSession(lookHandler.StartAddDraft))
	mux.Handle("GET /api/v1/looks/draft", withSession(lookHandler.ResumeDraft))
	mux.Handle("DELETE /api/v1/looks/draft", withSession(lookHandler.CancelDraft))
	mux.Handle("PUT /api/v1/looks/draft/name", withSession(lookHandler.SetDraftName))
	mux.Handle("POST /api/v1/looks/draft/image-upload", withSession(lookHandler.RequestDraftImageUpload))
	mux.Handle("PUT /api/v1/looks/draft/image", withSession(lookHandler.AttachDraftImage))
	mux.Handle("PUT /api/v1/looks/draft/products", withSession(lookHandler.SelectDraftProducts))
	mux.Handle("PUT /api/v1/looks/draft/markers", withSession(lookHandler.PlaceDraftMarkers))
	mux.Handle("POST /api/v1/looks/draft/submit", withSession(lookHandler.SubmitDraft))

	mux.Handle("GET /api/v1/looks", withSession(lookHandler.ListLooks))
	mux.Handle("GET /api/v1/looks/{id}", withSession(lookHandler.GetLook))
	mux.Handle("PUT /api/v1/looks/{id}", withSession(lookHandler.UpdateLook))
	mux.Handle("DELETE /api/v1/looks/{id}", withSession(lookHandler.DeleteLook))
	mux.Handle("POST /api/v1/looks/{id}/publish", withSession(lookHandler.PublishLook))
	mux.Handle("POST /api/v1/looks/{id}/draft", withSession(lookHandler.StartEditDraft))

	mux.Handle("PUT /api/v1/viewstate/{pageKey}", withSession(viewStateHandler.Save))
	mux.Handle("GET /api/v1/viewstate/{pageKey}", withSession(viewStateHandler.Load))
	mux.Handle("DELETE /api/v1/viewstate/{pageKey}", withSession(viewStateHandler.Clear))

	return httptest.NewServer(mux)
}

func (s *LookWorkflowE2ESuite) TestAddLookWizardWorkflow() {
	// 1. Start the wizard
	resp := s.makeRequest("POST", "/looks/draft", nil)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var draft map[string]interface{}
	s.decodeResponse(resp, &draft)
	s.Equal("add", draft["mode"])

	// 2. Name the look
	resp = s.makeRequest("PUT", "/looks/draft/name", map[string]interface{}{
		"name": "Rooftop Evening",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	// 3. Request an image upload slot
	resp = s.makeRequest("POST", "/looks/draft/image-upload", map[string]interface{}{
		"file_name":    "rooftop.jpg",
		"content_type": "image/jpeg",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var upload map[string]string
	s.decodeResponse(resp, &upload)
	fileKey := upload["file_key"]
	s.NotEmpty(fileKey)
	s.NotEmpty(upload["upload_url"])

	// Simulate the browser's PUT to the presigned URL
	_, err := s.storage.Upload(context.Background(), fileKey,
		bytes.NewReader([]byte("jpeg-bytes")), "image/jpeg")
	s.NoError(err)

	// 4. Attach the uploaded image
	resp = s.makeRequest("PUT", "/looks/draft/image", map[string]interface{}{
		"file_key": fileKey,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	// 5. Select products and place markers
	resp = s.makeRequest("PUT", "/looks/draft/products", map[string]interface{}{
		"product_ids": []string{"prod-1", "prod-2"},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.makeRequest("PUT", "/looks/draft/markers", map[string]interface{}{
		"markers": []map[string]interface{}{
			{"product_id": "prod-1", "x": 0.25, "y": 0.4},
			{"product_id": "prod-2", "x": 0.7, "y": 0.55},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	// 6. Submit and verify the look persists
	resp = s.makeRequest("POST", "/looks/draft/submit", nil)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var look map[string]interface{}
	s.decodeResponse(resp, &look)
	lookID := look["look_id"].(string)
	s.NotEmpty(lookID)
	s.Equal("Rooftop Evening", look["name"])

	resp = s.makeRequest("GET", "/looks/"+lookID, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	// 7. The wizard is gone after submit
	resp = s.makeRequest("GET", "/looks/draft", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *LookWorkflowE2ESuite) TestDraftSurvivesAcrossRequests() {
	resp := s.makeRequest("POST", "/looks/draft", nil)
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("PUT", "/looks/draft/name", map[string]interface{}{
		"name": "Interrupted Session",
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// A later page load resumes exactly where the wizard stopped
	resp = s.makeRequest("GET", "/looks/draft", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var draft map[string]interface{}
	s.decodeResponse(resp, &draft)
	s.Equal("Interrupted Session", draft["name"])

	resp = s.makeRequest("DELETE", "/looks/draft", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", "/looks/draft", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *LookWorkflowE2ESuite) TestLookCRUDLifecycle() {
	lookID := s.createLookThroughWizard("Lifecycle Look")

	// Update keeps the wizard-owned image fields
	resp := s.makeRequest("PUT", "/looks/"+lookID, map[string]interface{}{
		"name":        "Lifecycle Look Renamed",
		"product_ids": []string{"prod-1", "prod-2"},
		"markers": []map[string]interface{}{
			{"product_id": "prod-1", "x": 0.5, "y": 0.5},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var updated map[string]interface{}
	s.decodeResponse(resp, &updated)
	s.Equal("Lifecycle Look Renamed", updated["name"])
	s.NotEmpty(updated["main_image_key"])

	// Listing reflects the rename
	resp = s.makeRequest("GET", "/looks?search=Renamed", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var listResult map[string]interface{}
	s.decodeResponse(resp, &listResult)
	looks := listResult["looks"].([]interface{})
	s.Len(looks, 1)

	// Soft delete hides the look
	resp = s.makeRequest("DELETE", "/looks/"+lookID, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", "/looks/"+lookID, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *LookWorkflowE2ESuite) TestViewStateRoundTrip() {
	resp := s.makeRequest("PUT", "/viewstate/orders-list", map[string]interface{}{
		"scroll_offset": 1840,
		"filter_query":  "status=shipped",
		"restore_when":  []string{"back_forward", "reload"},
	})
	s.Equal(http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Back/forward navigation restores
	resp = s.makeRequest("GET", "/viewstate/orders-list?navigation=back_forward", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var state map[string]interface{}
	s.decodeResponse(resp, &state)
	s.Equal(float64(1840), state["scroll_offset"])

	// A fresh navigation starts at the top
	resp = s.makeRequest("GET", "/viewstate/orders-list?navigation=navigate", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("DELETE", "/viewstate/orders-list", nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", "/viewstate/orders-list?navigation=back_forward", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// Helper methods

func (s *LookWorkflowE2ESuite) createLookThroughWizard(name string) string {
	resp := s.makeRequest("POST", "/looks/draft", nil)
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("PUT", "/looks/draft/name", map[string]interface{}{"name": name})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("POST", "/looks/draft/image-upload", map[string]interface{}{
		"file_name":    "look.jpg",
		"content_type": "image/jpeg",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var upload map[string]string
	s.decodeResponse(resp, &upload)

	_, err := s.storage.Upload(context.Background(), upload["file_key"],
		bytes.NewReader([]byte("jpeg-bytes")), "image/jpeg")
	s.NoError(err)

	resp = s.makeRequest("PUT", "/looks/draft/image", map[string]interface{}{
		"file_key": upload["file_key"],
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("PUT", "/looks/draft/products", map[string]interface{}{
		"product_ids": []string{"prod-1", "prod-2"},
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("PUT", "/looks/draft/markers", map[string]interface{}{
		"markers": []map[string]interface{}{
			{"product_id": "prod-1", "x": 0.3, "y": 0.3},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("POST", "/looks/draft/submit", nil)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var look map[string]interface{}
	s.decodeResponse(resp, &look)
	return look["look_id"].(string)
}

func (s *LookWorkflowE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *LookWorkflowE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestLookWorkflowE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(LookWorkflowE2ESuite))
}
