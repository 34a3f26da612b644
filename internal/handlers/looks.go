// internal/handlers/looks.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/adapters/storage"
	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/handlers/middleware"
)

// LookHandler handles shop-the-look CRUD and the look-builder wizard
type LookHandler struct {
	looks   ports.LookService
	drafts  ports.DraftService
	storage storage.StorageClient
	logger  *slog.Logger
}

// NewLookHandler creates a new look handler
func NewLookHandler(looks ports.LookService, drafts ports.DraftService, storage storage.StorageClient, logger *slog.Logger) *LookHandler {
	return &LookHandler{
		looks:   looks,
		drafts:  drafts,
		storage: storage,
		logger:  logger.With(slog.String("handler", "looks")),
	}
}

// ListLooks handles GET /api/v1/looks
func (h *LookHandler) ListLooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	params := h.parseListParams(r, session)

	result, err := h.looks.List(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list looks",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list looks")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetLook handles GET /api/v1/looks/{id}
func (h *LookHandler) GetLook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	look, status, message := h.loadOwnedLook(ctx, r.PathValue("id"), session)
	if look == nil {
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, look)
}

// UpdateLook handles PUT /api/v1/looks/{id}
func (h *LookHandler) UpdateLook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	existing, status, message := h.loadOwnedLook(ctx, r.PathValue("id"), session)
	if existing == nil {
		h.respondError(w, status, message)
		return
	}

	var req UpdateLookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	look := req.ToDomain(existing)

	if err := h.looks.UpdateLook(ctx, existing.LookID, look); err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.ErrorContext(ctx, "failed to update look",
			slog.String("look_id", existing.LookID.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to update look")
		return
	}

	h.logger.InfoContext(ctx, "look updated",
		slog.String("look_id", existing.LookID.String()))

	h.respondJSON(w, http.StatusOK, look)
}

// DeleteLook handles DELETE /api/v1/looks/{id}
func (h *LookHandler) DeleteLook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	existing, status, message := h.loadOwnedLook(ctx, r.PathValue("id"), session)
	if existing == nil {
		h.respondError(w, status, message)
		return
	}

	// Permanent deletes are an admin-only escape hatch; sellers always soft
	// delete so a mistake is recoverable.
	permanent := r.URL.Query().Get("permanent") == "true" && session.UserType == domain.UserTypeAdmin

	if err := h.looks.DeleteLook(ctx, existing.LookID, permanent); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete look",
			slog.String("look_id", existing.LookID.String()),
			slog.Bool("permanent", permanent),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete look")
		return
	}

	h.logger.InfoContext(ctx, "look deleted",
		slog.String("look_id", existing.LookID.String()),
		slog.Bool("permanent", permanent))

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Look deleted successfully",
		"look_id":   existing.LookID.String(),
		"permanent": permanent,
	})
}

// PublishLook handles POST /api/v1/looks/{id}/publish
func (h *LookHandler) PublishLook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	existing, status, message := h.loadOwnedLook(ctx, r.PathValue("id"), session)
	if existing == nil {
		h.respondError(w, status, message)
		return
	}

	if err := h.looks.Publish(ctx, existing.LookID); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish look",
			slog.String("look_id", existing.LookID.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to publish look")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Look published",
		"look_id": existing.LookID.String(),
	})
}

// Draft wizard endpoints. The draft is keyed by session, so each endpoint
// needs nothing beyond the authenticated session and its step payload.

// StartAddDraft handles POST /api/v1/looks/draft
func (h *LookHandler) StartAddDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	draft, err := h.drafts.StartAdd(ctx, session.SessionID, session.SellerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to start add draft",
			slog.String("session_id", session.SessionID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to start look builder")
		return
	}

	h.respondJSON(w, http.StatusCreated, draft)
}

// StartEditDraft handles POST /api/v1/looks/{id}/draft
func (h *LookHandler) StartEditDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	existing, status, message := h.loadOwnedLook(ctx, r.PathValue("id"), session)
	if existing == nil {
		h.respondError(w, status, message)
		return
	}

	draft, err := h.drafts.StartEdit(ctx, session.SessionID, existing.LookID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to start edit draft",
			slog.String("look_id", existing.LookID.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to start look builder")
		return
	}

	h.respondJSON(w, http.StatusCreated, draft)
}

// ResumeDraft handles GET /api/v1/looks/draft
func (h *LookHandler) ResumeDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	draft, err := h.drafts.Resume(ctx, session.SessionID)
	if err != nil {
		if errors.Is(err, ports.ErrDraftNotFound) {
			h.respondError(w, http.StatusNotFound, "No draft in progress")
			return
		}

		h.logger.ErrorContext(ctx, "failed to resume draft",
			slog.String("session_id", session.SessionID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to resume look builder")
		return
	}

	h.respondJSON(w, http.StatusOK, draft)
}

// SetDraftName handles PUT /api/v1/looks/draft/name
func (h *LookHandler) SetDraftName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := h.drafts.SetName(ctx, session.SessionID, req.Name)
	if err != nil {
		h.respondDraftError(w, r, err, "Failed to set look name")
		return
	}

	h.respondJSON(w, http.StatusOK, draft)
}

// RequestDraftImageUpload handles POST /api/v1/looks/draft/image-upload.
// The browser uploads the image straight to object storage with the returned
// presigned URL, then attaches the key via AttachDraftImage.
func (h *LookHandler) RequestDraftImageUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req struct {
		FileName    string `json:"file_name"`
		ContentType string `json:"content_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !strings.HasPrefix(req.ContentType, "image/") {
		h.respondError(w, http.StatusBadRequest, "Only image uploads are allowed")
		return
	}

	fileKey := fmt.Sprintf("looks/%s/%s_%s", session.SellerID, uuid.New().String(), req.FileName)

	uploadURL, err := h.storage.GenerateUploadPresignedURL(ctx, fileKey, req.ContentType, 15*time.Minute)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to presign image upload",
			slog.String("file_key", fileKey),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to prepare image upload")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"upload_url": uploadURL,
		"file_key":   fileKey,
	})
}

// AttachDraftImage handles PUT /api/v1/looks/draft/image
func (h *LookHandler) AttachDraftImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req struct {
		FileKey string `json:"file_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FileKey == "" {
		h.respondError(w, http.StatusBadRequest, "file_key is required")
		return
	}

	exists, err := h.storage.Exists(ctx, req.FileKey)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check uploaded image",
			slog.String("file_key", req.FileKey),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to verify uploaded image")
		return
	}
	if !exists {
		h.respondError(w, http.StatusBadRequest, "Uploaded image not found in storage")
		return
	}

	fileURL, err := h.storage.GetPresignedURL(ctx, req.FileKey, 24*time.Hour)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to presign image download",
			slog.String("file_key", req.FileKey),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to verify uploaded image")
		return
	}

	draft, err := h.drafts.AttachImage(ctx, session.SessionID, req.FileKey, fileURL)
	if err != nil {
		h.respondDraftError(w, r, err, "Failed to attach image")
		return
	}

	h.respondJSON(w, http.StatusOK, draft)
}

// SelectDraftProducts handles PUT /api/v1/looks/draft/products
func (h *LookHandler) SelectDraftProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req struct {
		ProductIDs []string `json:"product_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := h.drafts.SelectProducts(ctx, session.SessionID, req.ProductIDs)
	if err != nil {
		h.respondDraftError(w, r, err, "Failed to select products")
		return
	}

	h.respondJSON(w, http.StatusOK, draft)
}

// PlaceDraftMarkers handles PUT /api/v1/looks/draft/markers
func (h *LookHandler) PlaceDraftMarkers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req struct {
		Markers []domain.Marker `json:"markers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := h.drafts.PlaceMarkers(ctx, session.SessionID, req.Markers)
	if err != nil {
		h.respondDraftError(w, r, err, "Failed to place markers")
		return
	}

	h.respondJSON(w, http.StatusOK, draft)
}

// SubmitDraft handles POST /api/v1/looks/draft/submit
func (h *LookHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	look, err := h.drafts.Submit(ctx, session.SessionID)
	if err != nil {
		h.respondDraftError(w, r, err, "Failed to submit look")
		return
	}

	h.logger.InfoContext(ctx, "look submitted from draft",
		slog.String("look_id", look.LookID.String()),
		slog.String("seller_id", look.SellerID))

	h.respondJSON(w, http.StatusCreated, look)
}

// CancelDraft handles DELETE /api/v1/looks/draft
func (h *LookHandler) CancelDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	if err := h.drafts.Cancel(ctx, session.SessionID); err != nil {
		if errors.Is(err, ports.ErrDraftNotFound) {
			h.respondError(w, http.StatusNotFound, "No draft in progress")
			return
		}

		h.logger.ErrorContext(ctx, "failed to cancel draft",
			slog.String("session_id", session.SessionID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to cancel look builder")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Draft cancelled"})
}

// loadOwnedLook parses the path id, loads the look and enforces tenant
// ownership. Sellers get a 404 for other tenants' looks rather than a 403 so
// the response does not confirm the look exists.
func (h *LookHandler) loadOwnedLook(ctx context.Context, idStr string, session *domain.Session) (*domain.Look, int, string) {
	lookID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, http.StatusBadRequest, "Invalid look ID format"
	}

	look, err := h.looks.GetByID(ctx, lookID)
	if err != nil {
		if strings.Contains(err.Error(), "look not found") {
			return nil, http.StatusNotFound, "Look not found"
		}

		h.logger.ErrorContext(ctx, "failed to load look",
			slog.String("look_id", idStr),
			slog.String("error", err.Error()))
		return nil, http.StatusInternalServerError, "Failed to retrieve look"
	}

	if session.UserType != domain.UserTypeAdmin && look.SellerID != session.SellerID {
		return nil, http.StatusNotFound, "Look not found"
	}

	return look, 0, ""
}

// respondDraftError maps draft service errors onto HTTP statuses shared by
// every wizard endpoint.
func (h *LookHandler) respondDraftError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ports.ErrDraftNotFound):
		h.respondError(w, http.StatusNotFound, "No draft in progress")
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrDraftTerminal):
		h.respondError(w, http.StatusConflict, err.Error())
	case strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "marker"):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "draft operation failed",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

// parseListParams parses query parameters for listing looks. Sellers are
// always scoped to their own tenant; admins may scope with seller_id or see
// everything.
func (h *LookHandler) parseListParams(r *http.Request, session *domain.Session) ports.LookListParams {
	params := ports.LookListParams{
		Page:      1,
		PageSize:  20,
		SortBy:    "updated_at",
		SortOrder: "desc",
	}

	if session.UserType == domain.UserTypeAdmin {
		params.SellerID = r.URL.Query().Get("seller_id")
	} else {
		params.SellerID = session.SellerID
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = l
			}
		}
	}

	params.Search = r.URL.Query().Get("search")
	params.Status = r.URL.Query().Get("status")

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}

	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

// Helper methods

func (h *LookHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *LookHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request DTOs

// UpdateLookRequest represents the request body for updating a look
type UpdateLookRequest struct {
	Name       string          `json:"name"`
	ProductIDs []string        `json:"product_ids"`
	Markers    []domain.Marker `json:"markers"`
	Status     string          `json:"status,omitempty"`
}

// Validate validates the update look request
func (r *UpdateLookRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(r.ProductIDs) == 0 {
		return fmt.Errorf("at least one product is required")
	}
	if r.Status != "" {
		switch domain.LookStatus(r.Status) {
		case domain.LookStatusDraft, domain.LookStatusPublished, domain.LookStatusArchived:
		default:
			return fmt.Errorf("invalid status: %s", r.Status)
		}
	}
	return nil
}

// ToDomain merges the request onto the existing look. Identity and image
// fields are carried over; the image only changes through the wizard.
func (r *UpdateLookRequest) ToDomain(existing *domain.Look) *domain.Look {
	look := &domain.Look{
		LookID:       existing.LookID,
		SellerID:     existing.SellerID,
		Name:         r.Name,
		MainImageKey: existing.MainImageKey,
		MainImageURL: existing.MainImageURL,
		ProductIDs:   r.ProductIDs,
		Markers:      r.Markers,
		Status:       existing.Status,
		CreatedAt:    existing.CreatedAt,
	}

	if r.Status != "" {
		look.Status = domain.LookStatus(r.Status)
	}

	return look
}
