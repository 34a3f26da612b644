// internal/workers/document_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/ledongthuc/pdf"

	"github.com/sellerhub/opsdash-be/internal/adapters/storage"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

// Task type names. Handlers enqueue these; cmd/worker registers them.
const (
	TypeDocumentProcess  = "document:process"
	TypeReportGenerate   = "report:generate"
	TypeCleanupOldData   = "cleanup:old_data"
	TypeCleanupTempFiles = "cleanup:temp_files"
)

// DocumentJobPayload represents the payload for document processing jobs
type DocumentJobPayload struct {
	DocumentID uuid.UUID `json:"document_id"`
	FileKey    string    `json:"file_key"`
	SupplierID string    `json:"supplier_id"`
}

// DocumentProcessor extracts text from uploaded supplier PDFs so reviewers
// can search document contents.
type DocumentProcessor struct {
	documents ports.DocumentRepository
	storage   storage.StorageClient
	tempDir   string
	logger    *slog.Logger
}

// NewDocumentProcessor creates a new document processor
func NewDocumentProcessor(documents ports.DocumentRepository, storage storage.StorageClient, tempDir string, logger *slog.Logger) *DocumentProcessor {
	return &DocumentProcessor{
		documents: documents,
		storage:   storage,
		tempDir:   tempDir,
		logger:    logger.With(slog.String("processor", "document")),
	}
}

// ProcessDocument downloads the uploaded PDF and stores its extracted text.
// Download failures are returned for retry; extraction failures mark the
// document failed because retrying a malformed PDF cannot succeed.
func (p *DocumentProcessor) ProcessDocument(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload DocumentJobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "processing supplier document",
		slog.String("document_id", payload.DocumentID.String()),
		slog.String("file_key", payload.FileKey))

	data, err := p.storage.Download(ctx, payload.FileKey)
	if err != nil {
		return fmt.Errorf("failed to download document: %w", err)
	}

	tempFile := filepath.Join(p.tempDir, fmt.Sprintf("doc_%s.pdf", payload.DocumentID))
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	defer os.Remove(tempFile)

	text, err := p.extractText(ctx, tempFile)
	if err != nil {
		reason := fmt.Sprintf("text extraction failed: %v", err)
		if markErr := p.documents.MarkFailed(ctx, payload.DocumentID, reason); markErr != nil {
			return fmt.Errorf("failed to mark document failed: %w", markErr)
		}
		p.logger.WarnContext(ctx, "document marked failed",
			slog.String("document_id", payload.DocumentID.String()),
			slog.String("reason", reason))
		return nil
	}

	if err := p.documents.MarkProcessed(ctx, payload.DocumentID, text); err != nil {
		return fmt.Errorf("failed to mark document processed: %w", err)
	}

	p.logger.InfoContext(ctx, "document processed",
		slog.String("document_id", payload.DocumentID.String()),
		slog.Int("text_length", len(text)),
		slog.Duration("duration", time.Since(start)))

	return nil
}

// extractText pulls plain text from every page of the PDF.
func (p *DocumentProcessor) extractText(ctx context.Context, filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to extract text from page",
				slog.Int("page", pageNum),
				slog.String("error", err.Error()))
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no extractable text in %d pages", totalPages)
	}

	return text, nil
}
