// internal/handlers/suppliers.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/sellerhub/opsdash-be/internal/adapters/storage"
	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/handlers/middleware"
	"github.com/sellerhub/opsdash-be/internal/workers"
)

// SupplierHandler handles supplier onboarding document uploads. Routes are
// admin-only; sellers never see supplier paperwork.
type SupplierHandler struct {
	documents   ports.DocumentRepository
	storage     storage.StorageClient
	asynqClient *asynq.Client
	maxFileSize int64
	logger      *slog.Logger
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(documents ports.DocumentRepository, storage storage.StorageClient, asynqClient *asynq.Client, maxFileSizeMB int, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		documents:   documents,
		storage:     storage,
		asynqClient: asynqClient,
		maxFileSize: int64(maxFileSizeMB) << 20,
		logger:      logger.With(slog.String("handler", "suppliers")),
	}
}

// UploadDocument handles POST /api/v1/suppliers/{supplierID}/documents
func (h *SupplierHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	supplierID := r.PathValue("supplierID")
	if supplierID == "" {
		h.respondError(w, http.StatusBadRequest, "Supplier ID is required")
		return
	}

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if header.Header.Get("Content-Type") != "application/pdf" ||
		!strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		h.respondError(w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	if header.Size > h.maxFileSize {
		h.respondError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds the %dMB limit", h.maxFileSize>>20))
		return
	}

	doc := &domain.SupplierDocument{
		SupplierID:  supplierID,
		FileName:    header.Filename,
		FileKey:     fmt.Sprintf("suppliers/%s/%s_%s", supplierID, uuid.New().String(), header.Filename),
		ContentType: "application/pdf",
		SizeBytes:   header.Size,
		UploadedBy:  session.UserID,
	}
	doc.PrepareForStorage()

	if err := doc.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.storage.Upload(ctx, doc.FileKey, file, doc.ContentType); err != nil {
		h.logger.ErrorContext(ctx, "failed to upload document",
			slog.String("file_key", doc.FileKey),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to store document")
		return
	}

	if err := h.documents.Save(ctx, doc); err != nil {
		h.logger.ErrorContext(ctx, "failed to save document record",
			slog.String("document_id", doc.DocumentID.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to save document")
		return
	}

	payload := workers.DocumentJobPayload{
		DocumentID: doc.DocumentID,
		FileKey:    doc.FileKey,
		SupplierID: supplierID,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal document payload",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to queue document processing")
		return
	}

	task := asynq.NewTask(workers.TypeDocumentProcess, b)
	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue document processing",
			slog.String("document_id", doc.DocumentID.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to queue document processing")
		return
	}

	h.logger.InfoContext(ctx, "supplier document queued for processing",
		slog.String("document_id", doc.DocumentID.String()),
		slog.String("supplier_id", supplierID),
		slog.String("task_id", info.ID))

	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"document_id": doc.DocumentID.String(),
		"status":      doc.Status,
		"message":     "Document has been queued for processing",
	})
}

// ListDocuments handles GET /api/v1/suppliers/{supplierID}/documents
func (h *SupplierHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := r.PathValue("supplierID")
	if supplierID == "" {
		h.respondError(w, http.StatusBadRequest, "Supplier ID is required")
		return
	}

	docs, err := h.documents.FindBySupplier(ctx, supplierID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list supplier documents",
			slog.String("supplier_id", supplierID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"supplier_id": supplierID,
		"documents":   docs,
		"count":       len(docs),
	})
}

// GetDocument handles GET /api/v1/suppliers/documents/{id}
func (h *SupplierHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	documentID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid document ID format")
		return
	}

	doc, err := h.documents.FindByID(ctx, documentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get document",
			slog.String("document_id", idStr),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve document")
		return
	}
	if doc == nil {
		h.respondError(w, http.StatusNotFound, "Document not found")
		return
	}

	h.respondJSON(w, http.StatusOK, doc)
}

// DownloadDocument handles GET /api/v1/suppliers/documents/{id}/download
func (h *SupplierHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	documentID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid document ID format")
		return
	}

	doc, err := h.documents.FindByID(ctx, documentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get document",
			slog.String("document_id", idStr),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve document")
		return
	}
	if doc == nil {
		h.respondError(w, http.StatusNotFound, "Document not found")
		return
	}

	url, err := h.storage.GetPresignedURL(ctx, doc.FileKey, 15*time.Minute)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to presign document download",
			slog.String("file_key", doc.FileKey),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to prepare download")
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// Helper methods

func (h *SupplierHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *SupplierHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
