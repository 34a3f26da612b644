// internal/adapters/db/document_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

// documentRepository implements ports.DocumentRepository
type documentRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewDocumentRepository creates a new supplier document repository
func NewDocumentRepository(db *Database, logger *slog.Logger) ports.DocumentRepository {
	return &documentRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "supplier_documents")),
	}
}

var _ ports.DocumentRepository = (*documentRepository)(nil)

func (r *documentRepository) Save(ctx context.Context, doc *domain.SupplierDocument) error {
	query := `
		INSERT INTO supplier_documents (
			document_id, supplier_id, file_name, file_key, content_type,
			size_bytes, status, uploaded_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		doc.DocumentID, doc.SupplierID, doc.FileName, doc.FileKey, doc.ContentType,
		doc.SizeBytes, doc.Status, doc.UploadedBy, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier document: %w", err)
	}

	r.logger.DebugContext(ctx, "supplier document saved",
		slog.String("document_id", doc.DocumentID.String()),
		slog.String("supplier_id", doc.SupplierID))

	return nil
}

func (r *documentRepository) FindByID(ctx context.Context, documentID uuid.UUID) (*domain.SupplierDocument, error) {
	query := `
		SELECT document_id, supplier_id, file_name, file_key, content_type,
			size_bytes, status, extracted_text, error, uploaded_by,
			created_at, updated_at
		FROM supplier_documents
		WHERE document_id = $1`

	doc, err := scanDocument(r.db.QueryRow(ctx, query, documentID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find supplier document: %w", err)
	}

	return doc, nil
}

func (r *documentRepository) FindBySupplier(ctx context.Context, supplierID string) ([]domain.SupplierDocument, error) {
	query := `
		SELECT document_id, supplier_id, file_name, file_key, content_type,
			size_bytes, status, extracted_text, error, uploaded_by,
			created_at, updated_at
		FROM supplier_documents
		WHERE supplier_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.SupplierDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier document: %w", err)
		}
		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return docs, nil
}

func (r *documentRepository) MarkProcessed(ctx context.Context, documentID uuid.UUID, extractedText string) error {
	query := `
		UPDATE supplier_documents
		SET status = $2, extracted_text = $3, error = NULL, updated_at = $4
		WHERE document_id = $1`

	tag, err := r.db.Exec(ctx, query, documentID, domain.DocumentStatusProcessed, extractedText, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark document processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("supplier document not found: %s", documentID)
	}

	return nil
}

func (r *documentRepository) MarkFailed(ctx context.Context, documentID uuid.UUID, reason string) error {
	query := `
		UPDATE supplier_documents
		SET status = $2, error = $3, updated_at = $4
		WHERE document_id = $1`

	tag, err := r.db.Exec(ctx, query, documentID, domain.DocumentStatusFailed, reason, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark document failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("supplier document not found: %s", documentID)
	}

	r.logger.WarnContext(ctx, "supplier document processing failed",
		slog.String("document_id", documentID.String()),
		slog.String("reason", reason))

	return nil
}

func scanDocument(row pgx.Row) (*domain.SupplierDocument, error) {
	doc := &domain.SupplierDocument{}
	var extractedText, docError sql.NullString

	err := row.Scan(
		&doc.DocumentID, &doc.SupplierID, &doc.FileName, &doc.FileKey, &doc.ContentType,
		&doc.SizeBytes, &doc.Status, &extractedText, &docError, &doc.UploadedBy,
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.ExtractedText = extractedText.String
	doc.Error = docError.String

	return doc, nil
}
