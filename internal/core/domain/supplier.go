// internal/core/domain/supplier.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DocumentStatus tracks processing of an uploaded onboarding document.
type DocumentStatus string

const (
	DocumentStatusUploaded  DocumentStatus = "uploaded"
	DocumentStatusProcessed DocumentStatus = "processed"
	DocumentStatusFailed    DocumentStatus = "failed"
)

// SupplierDocument is a PDF uploaded during supplier onboarding. The worker
// extracts its text so onboarding reviewers can search document contents.
type SupplierDocument struct {
	DocumentID    uuid.UUID      `json:"document_id"`
	SupplierID    string         `json:"supplier_id"`
	FileName      string         `json:"file_name"`
	FileKey       string         `json:"file_key"`
	ContentType   string         `json:"content_type"`
	SizeBytes     int64          `json:"size_bytes"`
	Status        DocumentStatus `json:"status"`
	ExtractedText string         `json:"extracted_text,omitempty"`
	Error         string         `json:"error,omitempty"`
	UploadedBy    string         `json:"uploaded_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Validate checks required fields before storage.
func (d *SupplierDocument) Validate() error {
	if d.SupplierID == "" {
		return fmt.Errorf("supplier_id is required")
	}
	if d.FileName == "" {
		return fmt.Errorf("file_name is required")
	}
	if d.FileKey == "" {
		return fmt.Errorf("file_key is required")
	}
	if d.SizeBytes <= 0 {
		return fmt.Errorf("size_bytes must be positive")
	}
	return nil
}

// PrepareForStorage fills ids, status and timestamps before insert.
func (d *SupplierDocument) PrepareForStorage() {
	if d.DocumentID == uuid.Nil {
		d.DocumentID = uuid.New()
	}
	if d.Status == "" {
		d.Status = DocumentStatusUploaded
	}
	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}
