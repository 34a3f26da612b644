// internal/core/ports/documents.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

// DocumentRepository persists supplier onboarding documents.
type DocumentRepository interface {
	Save(ctx context.Context, doc *domain.SupplierDocument) error
	FindByID(ctx context.Context, documentID uuid.UUID) (*domain.SupplierDocument, error)
	FindBySupplier(ctx context.Context, supplierID string) ([]domain.SupplierDocument, error)
	MarkProcessed(ctx context.Context, documentID uuid.UUID, extractedText string) error
	MarkFailed(ctx context.Context, documentID uuid.UUID, reason string) error
}
