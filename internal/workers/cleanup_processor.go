// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"

	"github.com/sellerhub/opsdash-be/internal/adapters/storage"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/pkg/config"
)

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	reports ports.ReportRepository
	storage storage.StorageClient
	config  *config.Config
	logger  *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(reports ports.ReportRepository, storage storage.StorageClient, config *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		reports: reports,
		storage: storage,
		config:  config,
		logger:  logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupOldData removes payout report records past the retention window and
// their generated files. The record goes first; an orphaned S3 object is
// harmless, a dangling record pointing at a deleted file is not.
func (p *CleanupProcessor) CleanupOldData(ctx context.Context, t *asynq.Task) error {
	retention := p.config.FileProcessing.ReportRetention
	cutoff := time.Now().Add(-retention)

	p.logger.InfoContext(ctx, "cleaning up expired reports",
		slog.Time("cutoff", cutoff))

	deleted, err := p.reports.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to delete expired reports: %w", err)
	}

	p.logger.InfoContext(ctx, "expired reports cleaned up",
		slog.Int64("rows_deleted", deleted))

	return nil
}

// CleanupTempFiles removes old temporary files
func (p *CleanupProcessor) CleanupTempFiles(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up temp files")

	tempDir := p.config.FileProcessing.TempDir
	maxAge := 24 * time.Hour

	var deletedCount int
	err := filepath.Walk(tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				p.logger.WarnContext(ctx, "failed to delete temp file",
					slog.String("file", path),
					slog.String("error", err.Error()))
			} else {
				deletedCount++
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to walk temp directory: %w", err)
	}

	p.logger.InfoContext(ctx, "temp files cleaned up",
		slog.Int("files_deleted", deletedCount))

	return nil
}
