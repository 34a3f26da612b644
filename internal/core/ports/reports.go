// internal/core/ports/reports.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

// PayoutSource supplies the order data a payout statement is computed from.
type PayoutSource interface {
	FetchPayoutLines(ctx context.Context, sellerID string, periodStart, periodEnd time.Time) ([]domain.PayoutLine, error)
}

// ReportRepository persists payout report job records.
type ReportRepository interface {
	Save(ctx context.Context, report *domain.PayoutReport) error
	FindByID(ctx context.Context, reportID uuid.UUID) (*domain.PayoutReport, error)
	FindBySeller(ctx context.Context, sellerID string) ([]domain.PayoutReport, error)
	MarkRunning(ctx context.Context, reportID uuid.UUID) error
	MarkCompleted(ctx context.Context, reportID uuid.UUID, fileKey string) error
	MarkFailed(ctx context.Context, reportID uuid.UUID, reason string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
