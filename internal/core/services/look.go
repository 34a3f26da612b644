// internal/core/services/look.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

const lookCacheTTL = 5 * time.Minute

// LookService handles shop-the-look business logic
type LookService struct {
	repo        ports.LookRepository
	cache       ports.CacheRepository
	invalidator ports.CacheInvalidator
	logger      *slog.Logger
}

// Statically assert that *LookService implements the LookService interface.
var _ ports.LookService = (*LookService)(nil)

// NewLookService creates a new look service
func NewLookService(repo ports.LookRepository, cache ports.CacheRepository, invalidator ports.CacheInvalidator, logger *slog.Logger) *LookService {
	return &LookService{
		repo:        repo,
		cache:       cache,
		invalidator: invalidator,
		logger:      logger.With(slog.String("service", "look")),
	}
}

// GetByID retrieves a look by id, reading through the cache.
func (s *LookService) GetByID(ctx context.Context, lookID uuid.UUID) (*domain.Look, error) {
	key := fmt.Sprintf("look:%s", lookID)

	var look domain.Look
	err := s.cache.GetOrSet(ctx, key, &look, func() (interface{}, error) {
		found, err := s.repo.FindByID(ctx, lookID)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, fmt.Errorf("look not found: %s", lookID)
		}
		return found, nil
	}, lookCacheTTL)

	if err != nil {
		return nil, fmt.Errorf("failed to get look: %w", err)
	}

	return &look, nil
}

// List retrieves looks with filtering and pagination
func (s *LookService) List(ctx context.Context, params ports.LookListParams) (*ports.LookListResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	looks, totalCount, err := s.repo.FindAll(ctx, ports.LookQuery{
		SellerID:  params.SellerID,
		Search:    params.Search,
		Status:    params.Status,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list looks: %w", err)
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return &ports.LookListResult{
		Looks:      looks,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

// UpdateLook updates an existing look and drops its cached reads.
func (s *LookService) UpdateLook(ctx context.Context, lookID uuid.UUID, look *domain.Look) error {
	look.LookID = lookID

	if err := look.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Update(ctx, look); err != nil {
		return fmt.Errorf("failed to update look: %w", err)
	}

	s.invalidator.InvalidateLook(ctx, lookID.String(), look.SellerID)

	s.logger.InfoContext(ctx, "updated look",
		slog.String("look_id", lookID.String()))

	return nil
}

// DeleteLook deletes a look (soft delete by default)
func (s *LookService) DeleteLook(ctx context.Context, lookID uuid.UUID, permanent bool) error {
	look, err := s.repo.FindByID(ctx, lookID)
	if err != nil {
		return fmt.Errorf("failed to find look: %w", err)
	}
	if look == nil {
		return fmt.Errorf("look not found: %s", lookID)
	}

	if permanent {
		err = s.repo.Delete(ctx, lookID)
	} else {
		err = s.repo.SoftDelete(ctx, lookID)
	}
	if err != nil {
		return fmt.Errorf("failed to delete look: %w", err)
	}

	s.invalidator.InvalidateLook(ctx, lookID.String(), look.SellerID)

	s.logger.InfoContext(ctx, "deleted look",
		slog.String("look_id", lookID.String()),
		slog.Bool("permanent", permanent))

	return nil
}

// Publish moves a look to published status.
func (s *LookService) Publish(ctx context.Context, lookID uuid.UUID) error {
	look, err := s.repo.FindByID(ctx, lookID)
	if err != nil {
		return fmt.Errorf("failed to find look: %w", err)
	}
	if look == nil {
		return fmt.Errorf("look not found: %s", lookID)
	}

	if look.Status == domain.LookStatusPublished {
		return nil
	}

	look.Status = domain.LookStatusPublished
	if err := s.repo.Update(ctx, look); err != nil {
		return fmt.Errorf("failed to publish look: %w", err)
	}

	s.invalidator.InvalidateLook(ctx, lookID.String(), look.SellerID)

	s.logger.InfoContext(ctx, "published look",
		slog.String("look_id", lookID.String()))

	return nil
}
