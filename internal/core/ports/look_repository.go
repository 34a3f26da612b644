// internal/core/ports/look_repository.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

// LookRepository defines the persistence port for shop-the-look sets.
// This interface is implemented by the database adapter.
type LookRepository interface {
	Save(ctx context.Context, look *domain.Look) error
	Update(ctx context.Context, look *domain.Look) error
	FindByID(ctx context.Context, lookID uuid.UUID) (*domain.Look, error)
	FindBySeller(ctx context.Context, sellerID string) ([]domain.Look, error)
	FindAll(ctx context.Context, params LookQuery) ([]*domain.Look, int64, error)
	SoftDelete(ctx context.Context, lookID uuid.UUID) error
	Delete(ctx context.Context, lookID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, lookID uuid.UUID) (bool, error)
}

// LookQuery holds filter, sort and pagination parameters for FindAll.
type LookQuery struct {
	SellerID  string
	Search    string
	Status    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
