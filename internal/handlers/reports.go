// internal/handlers/reports.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/sellerhub/opsdash-be/internal/adapters/storage"
	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/handlers/middleware"
	"github.com/sellerhub/opsdash-be/internal/workers"
)

// ReportHandler handles payout report requests and downloads
type ReportHandler struct {
	reports     ports.ReportRepository
	storage     storage.StorageClient
	asynqClient *asynq.Client
	logger      *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports ports.ReportRepository, storage storage.StorageClient, asynqClient *asynq.Client, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports:     reports,
		storage:     storage,
		asynqClient: asynqClient,
		logger:      logger.With(slog.String("handler", "reports")),
	}
}

// RequestReport handles POST /api/v1/reports
func (h *ReportHandler) RequestReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req RequestReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sellerID := session.SellerID
	if session.UserType == domain.UserTypeAdmin {
		// Admins generate statements on behalf of any seller.
		sellerID = req.SellerID
	}
	if sellerID == "" {
		h.respondError(w, http.StatusBadRequest, "seller_id is required")
		return
	}

	report := &domain.PayoutReport{
		SellerID:    sellerID,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		RequestedBy: session.UserID,
	}
	report.PrepareForStorage()

	if err := report.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reports.Save(ctx, report); err != nil {
		h.logger.ErrorContext(ctx, "failed to save report request",
			slog.String("seller_id", sellerID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to create report")
		return
	}

	b, err := json.Marshal(workers.ReportJobPayload{ReportID: report.ReportID})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to queue report")
		return
	}

	task := asynq.NewTask(workers.TypeReportGenerate, b)
	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue report generation",
			slog.String("report_id", report.ReportID.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to queue report")
		return
	}

	h.logger.InfoContext(ctx, "payout report queued",
		slog.String("report_id", report.ReportID.String()),
		slog.String("seller_id", sellerID),
		slog.String("task_id", info.ID))

	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"report_id": report.ReportID.String(),
		"status":    report.Status,
		"message":   "Report has been queued for generation",
	})
}

// ListReports handles GET /api/v1/reports
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	sellerID := session.SellerID
	if session.UserType == domain.UserTypeAdmin {
		sellerID = r.URL.Query().Get("seller_id")
		if sellerID == "" {
			h.respondError(w, http.StatusBadRequest, "seller_id is required")
			return
		}
	}

	reports, err := h.reports.FindBySeller(ctx, sellerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list reports",
			slog.String("seller_id", sellerID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list reports")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"seller_id": sellerID,
		"reports":   reports,
		"count":     len(reports),
	})
}

// GetReport handles GET /api/v1/reports/{id}
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	report, status, message := h.loadOwnedReport(r, session)
	if report == nil {
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, report)
}

// DownloadReport handles GET /api/v1/reports/{id}/download. The response is a
// redirect to a short-lived presigned URL so the file bytes never pass
// through the API.
func (h *ReportHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	report, status, message := h.loadOwnedReport(r, session)
	if report == nil {
		h.respondError(w, status, message)
		return
	}

	if report.Status != domain.ReportStatusCompleted {
		h.respondError(w, http.StatusConflict,
			fmt.Sprintf("Report is not ready for download (status: %s)", report.Status))
		return
	}

	url, err := h.storage.GetPresignedURL(ctx, report.FileKey, 15*time.Minute)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to presign report download",
			slog.String("file_key", report.FileKey),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to prepare download")
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// loadOwnedReport parses the path id, loads the report and enforces tenant
// ownership the same way the look handler does.
func (h *ReportHandler) loadOwnedReport(r *http.Request, session *domain.Session) (*domain.PayoutReport, int, string) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	reportID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, http.StatusBadRequest, "Invalid report ID format"
	}

	report, err := h.reports.FindByID(ctx, reportID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load report",
			slog.String("report_id", idStr),
			slog.String("error", err.Error()))
		return nil, http.StatusInternalServerError, "Failed to retrieve report"
	}
	if report == nil {
		return nil, http.StatusNotFound, "Report not found"
	}

	if session.UserType != domain.UserTypeAdmin && report.SellerID != session.SellerID {
		return nil, http.StatusNotFound, "Report not found"
	}

	return report, 0, ""
}

// Helper methods

func (h *ReportHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ReportHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request DTOs

// RequestReportRequest represents the request body for requesting a report
type RequestReportRequest struct {
	SellerID    string    `json:"seller_id,omitempty"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}
