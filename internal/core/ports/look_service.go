// internal/core/ports/look_service.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

// LookService defines the application service port for shop-the-look sets.
type LookService interface {
	GetByID(ctx context.Context, lookID uuid.UUID) (*domain.Look, error)
	List(ctx context.Context, params LookListParams) (*LookListResult, error)
	UpdateLook(ctx context.Context, lookID uuid.UUID, look *domain.Look) error
	DeleteLook(ctx context.Context, lookID uuid.UUID, permanent bool) error
	Publish(ctx context.Context, lookID uuid.UUID) error
}

// LookListParams holds parameters for listing looks.
type LookListParams struct {
	SellerID  string
	Search    string
	Status    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// LookListResult holds one page of looks.
type LookListResult struct {
	Looks      []*domain.Look `json:"looks"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int64          `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}

// DraftService drives the look-builder wizard. Snapshots live in the draft
// store keyed by session; terminal drafts are removed.
type DraftService interface {
	StartAdd(ctx context.Context, sessionID, sellerID string) (*domain.LookDraft, error)
	StartEdit(ctx context.Context, sessionID string, lookID uuid.UUID) (*domain.LookDraft, error)
	Resume(ctx context.Context, sessionID string) (*domain.LookDraft, error)
	SetName(ctx context.Context, sessionID, name string) (*domain.LookDraft, error)
	AttachImage(ctx context.Context, sessionID, fileKey, fileURL string) (*domain.LookDraft, error)
	SelectProducts(ctx context.Context, sessionID string, productIDs []string) (*domain.LookDraft, error)
	PlaceMarkers(ctx context.Context, sessionID string, markers []domain.Marker) (*domain.LookDraft, error)
	Submit(ctx context.Context, sessionID string) (*domain.Look, error)
	Cancel(ctx context.Context, sessionID string) error
}
