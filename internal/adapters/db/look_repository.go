// internal/adapters/db/look_repository.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

// lookRepository implements ports.LookRepository
type lookRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewLookRepository creates a new look repository
func NewLookRepository(db *Database, logger *slog.Logger) ports.LookRepository {
	return &lookRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "looks")),
	}
}

var _ ports.LookRepository = (*lookRepository)(nil)

const lookColumns = `
	look_id, seller_id, name, main_image_key, main_image_url,
	product_ids, markers, status, created_at, updated_at`

// Save creates a new look. Markers are stored as jsonb.
func (r *lookRepository) Save(ctx context.Context, look *domain.Look) error {
	query := `
		INSERT INTO looks (
			look_id, seller_id, name, main_image_key, main_image_url,
			product_ids, markers, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	markersJSON, err := json.Marshal(look.Markers)
	if err != nil {
		return fmt.Errorf("failed to encode markers: %w", err)
	}

	err = r.db.QueryRow(ctx, query,
		look.LookID, look.SellerID, look.Name, look.MainImageKey, look.MainImageURL,
		look.ProductIDs, markersJSON, look.Status, look.CreatedAt, look.UpdatedAt,
	).Scan(&look.CreatedAt, &look.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save look: %w", err)
	}

	r.logger.DebugContext(ctx, "look saved",
		slog.String("look_id", look.LookID.String()),
		slog.String("seller_id", look.SellerID))

	return nil
}

// Update replaces an existing look's mutable fields.
func (r *lookRepository) Update(ctx context.Context, look *domain.Look) error {
	query := `
		UPDATE looks SET
			name = $2, main_image_key = $3, main_image_url = $4,
			product_ids = $5, markers = $6, status = $7, updated_at = $8
		WHERE look_id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	markersJSON, err := json.Marshal(look.Markers)
	if err != nil {
		return fmt.Errorf("failed to encode markers: %w", err)
	}

	look.UpdatedAt = time.Now()
	err = r.db.QueryRow(ctx, query,
		look.LookID, look.Name, look.MainImageKey, look.MainImageURL,
		look.ProductIDs, markersJSON, look.Status, look.UpdatedAt,
	).Scan(&look.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("look not found: %s", look.LookID)
		}
		return fmt.Errorf("failed to update look: %w", err)
	}

	r.logger.DebugContext(ctx, "look updated",
		slog.String("look_id", look.LookID.String()))

	return nil
}

// FindByID retrieves a look by id. Returns (nil, nil) when not found.
func (r *lookRepository) FindByID(ctx context.Context, lookID uuid.UUID) (*domain.Look, error) {
	query := `SELECT ` + lookColumns + `
		FROM looks
		WHERE look_id = $1 AND deleted_at IS NULL`

	look, err := scanLook(r.db.QueryRow(ctx, query, lookID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find look: %w", err)
	}

	return look, nil
}

// FindBySeller retrieves all of a seller's looks, newest first.
func (r *lookRepository) FindBySeller(ctx context.Context, sellerID string) ([]domain.Look, error) {
	query := `SELECT ` + lookColumns + `
		FROM looks
		WHERE seller_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query looks: %w", err)
	}
	defer rows.Close()

	var looks []domain.Look
	for rows.Next() {
		look, err := scanLook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan look: %w", err)
		}
		looks = append(looks, *look)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return looks, nil
}

// SoftDelete marks a look as deleted
func (r *lookRepository) SoftDelete(ctx context.Context, lookID uuid.UUID) error {
	query := `UPDATE looks SET deleted_at = $2, updated_at = $2 WHERE look_id = $1 AND deleted_at IS NULL`

	now := time.Now()
	tag, err := r.db.Exec(ctx, query, lookID, now)
	if err != nil {
		return fmt.Errorf("failed to soft delete look: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("look not found: %s", lookID)
	}

	r.logger.InfoContext(ctx, "look soft deleted",
		slog.String("look_id", lookID.String()))

	return nil
}

// Delete performs a hard delete
func (r *lookRepository) Delete(ctx context.Context, lookID uuid.UUID) error {
	query := `DELETE FROM looks WHERE look_id = $1`

	tag, err := r.db.Exec(ctx, query, lookID)
	if err != nil {
		return fmt.Errorf("failed to delete look: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("look not found: %s", lookID)
	}

	r.logger.InfoContext(ctx, "look deleted",
		slog.String("look_id", lookID.String()))

	return nil
}

// Count returns the total number of live looks
func (r *lookRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM looks WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count looks: %w", err)
	}

	return count, nil
}

// Exists checks if a look exists
func (r *lookRepository) Exists(ctx context.Context, lookID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM looks WHERE look_id = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, lookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}

	return exists, nil
}

// FindAll retrieves looks with filtering and pagination
func (r *lookRepository) FindAll(ctx context.Context, params ports.LookQuery) ([]*domain.Look, int64, error) {
	qb := squirrel.Select(
		"look_id", "seller_id", "name", "main_image_key", "main_image_url",
		"product_ids", "markers", "status", "created_at", "updated_at",
	).From("looks").
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if params.SellerID != "" {
		qb = qb.Where(squirrel.Eq{"seller_id": params.SellerID})
	}
	if params.Status != "" {
		qb = qb.Where(squirrel.Eq{"status": params.Status})
	}
	if params.Search != "" {
		qb = qb.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	countQb := qb.Column("COUNT(*) OVER()").Limit(1)
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	err = r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount)
	if err != nil && err != pgx.ErrNoRows {
		return nil, 0, fmt.Errorf("failed to count looks: %w", err)
	}

	orderBy := "created_at DESC"
	if params.SortBy != "" {
		direction := "ASC"
		if params.SortOrder == "desc" {
			direction = "DESC"
		}

		switch params.SortBy {
		case "name":
			orderBy = fmt.Sprintf("name %s", direction)
		case "status":
			orderBy = fmt.Sprintf("status %s", direction)
		case "updated":
			orderBy = fmt.Sprintf("updated_at %s", direction)
		default:
			orderBy = fmt.Sprintf("created_at %s", direction)
		}
	}
	qb = qb.OrderBy(orderBy)

	if params.Limit > 0 {
		qb = qb.Limit(uint64(params.Limit))
	}
	if params.Offset > 0 {
		qb = qb.Offset(uint64(params.Offset))
	}

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query looks: %w", err)
	}
	defer rows.Close()

	var looks []*domain.Look
	for rows.Next() {
		look, err := scanLook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan look: %w", err)
		}
		looks = append(looks, look)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return looks, totalCount, nil
}

// scanLook scans one look row, decoding the jsonb markers column.
func scanLook(row pgx.Row) (*domain.Look, error) {
	look := &domain.Look{}
	var markersJSON []byte

	err := row.Scan(
		&look.LookID, &look.SellerID, &look.Name, &look.MainImageKey, &look.MainImageURL,
		&look.ProductIDs, &markersJSON, &look.Status, &look.CreatedAt, &look.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(markersJSON) > 0 {
		if err := json.Unmarshal(markersJSON, &look.Markers); err != nil {
			return nil, fmt.Errorf("failed to decode markers: %w", err)
		}
	}

	return look, nil
}
