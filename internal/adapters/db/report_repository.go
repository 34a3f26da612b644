// internal/adapters/db/report_repository.go
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

// reportRepository implements ports.ReportRepository
type reportRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewReportRepository creates a new payout report repository
func NewReportRepository(db *Database, logger *slog.Logger) ports.ReportRepository {
	return &reportRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "payout_reports")),
	}
}

var _ ports.ReportRepository = (*reportRepository)(nil)

func (r *reportRepository) Save(ctx context.Context, report *domain.PayoutReport) error {
	query := `
		INSERT INTO payout_reports (
			report_id, seller_id, period_start, period_end, status,
			requested_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		report.ReportID, report.SellerID, report.PeriodStart, report.PeriodEnd,
		report.Status, report.RequestedBy, report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payout report: %w", err)
	}

	r.logger.DebugContext(ctx, "payout report saved",
		slog.String("report_id", report.ReportID.String()),
		slog.String("seller_id", report.SellerID))

	return nil
}

func (r *reportRepository) FindByID(ctx context.Context, reportID uuid.UUID) (*domain.PayoutReport, error) {
	query := `
		SELECT report_id, seller_id, period_start, period_end, status,
			file_key, error, requested_by, created_at, updated_at
		FROM payout_reports
		WHERE report_id = $1`

	report, err := scanReport(r.db.QueryRow(ctx, query, reportID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payout report: %w", err)
	}

	return report, nil
}

func (r *reportRepository) FindBySeller(ctx context.Context, sellerID string) ([]domain.PayoutReport, error) {
	query := `
		SELECT report_id, seller_id, period_start, period_end, status,
			file_key, error, requested_by, created_at, updated_at
		FROM payout_reports
		WHERE seller_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payout reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.PayoutReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payout report: %w", err)
		}
		reports = append(reports, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reports, nil
}

func (r *reportRepository) MarkRunning(ctx context.Context, reportID uuid.UUID) error {
	return r.setStatus(ctx, reportID, domain.ReportStatusRunning, "", "")
}

func (r *reportRepository) MarkCompleted(ctx context.Context, reportID uuid.UUID, fileKey string) error {
	return r.setStatus(ctx, reportID, domain.ReportStatusCompleted, fileKey, "")
}

func (r *reportRepository) MarkFailed(ctx context.Context, reportID uuid.UUID, reason string) error {
	return r.setStatus(ctx, reportID, domain.ReportStatusFailed, "", reason)
}

func (r *reportRepository) setStatus(ctx context.Context, reportID uuid.UUID, status domain.ReportStatus, fileKey, reason string) error {
	query := `
		UPDATE payout_reports
		SET status = $2, file_key = NULLIF($3, ''), error = NULLIF($4, ''), updated_at = $5
		WHERE report_id = $1`

	tag, err := r.db.Exec(ctx, query, reportID, status, fileKey, reason, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update payout report status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payout report not found: %s", reportID)
	}

	return nil
}

// DeleteOlderThan removes finished report rows older than the cutoff.
func (r *reportRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM payout_reports
		WHERE created_at < $1 AND status IN ($2, $3)`

	tag, err := r.db.Exec(ctx, query, cutoff, domain.ReportStatusCompleted, domain.ReportStatusFailed)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old payout reports: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanReport(row pgx.Row) (*domain.PayoutReport, error) {
	report := &domain.PayoutReport{}
	var fileKey, reportError sql.NullString

	err := row.Scan(
		&report.ReportID, &report.SellerID, &report.PeriodStart, &report.PeriodEnd,
		&report.Status, &fileKey, &reportError, &report.RequestedBy,
		&report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.FileKey = fileKey.String
	report.Error = reportError.String

	return report, nil
}
