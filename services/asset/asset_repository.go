package assetservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ops360/models"
)

type AssetRepository interface {
	ListAssets(ctx context.Context) ([]models.Asset, error)
	GetAssetByID(ctx context.Context, assetID uuid.UUID) (models.Asset, error)
	CreateAsset(ctx context.Context, req CreateAssetReq) (models.Asset, error)
	MarkAvailable(ctx context.Context, assetID uuid.UUID) error
	MarkInUse(ctx context.Context, assetID uuid.UUID) error
	CountAssetsByStatus(ctx context.Context) (models.AssetStats, error)
}

type PostgresAssetRepository struct {
	DB *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &PostgresAssetRepository{DB: db}
}

const assetColumns = `
	a.id, a.asset_tag, a.name, a.category, a.serial_number, a.status,
	a.location, a.assigned_to, a.assigned_at, a.last_checkout, a.last_checkin,
	a.created_at, e.full_name AS employee_name`

func (r *PostgresAssetRepository) ListAssets(ctx context.Context) ([]models.Asset, error) {
	assets := make([]models.Asset, 0)

	err := r.DB.SelectContext(ctx, &assets, `
		SELECT `+assetColumns+`
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		ORDER BY a.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}
	return assets, nil
}

func (r *PostgresAssetRepository) GetAssetByID(ctx context.Context, assetID uuid.UUID) (models.Asset, error) {
	var asset models.Asset

	err := r.DB.GetContext(ctx, &asset, `
		SELECT `+assetColumns+`
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		WHERE a.id = $1
	`, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, sql.ErrNoRows
		}
		return models.Asset{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}

// CreateAsset inserts with status forced to available regardless of input
// and returns the inserted record.
func (r *PostgresAssetRepository) CreateAsset(ctx context.Context, req CreateAssetReq) (models.Asset, error) {
	var asset models.Asset

	err := r.DB.GetContext(ctx, &asset, `
		INSERT INTO assets (asset_tag, name, category, serial_number, location, status)
		VALUES ($1, $2, $3, $4, $5, 'available')
		RETURNING id, asset_tag, name, category, serial_number, status,
			location, assigned_to, assigned_at, last_checkout, last_checkin, created_at
	`, req.AssetTag, req.Name, req.Category, req.SerialNumber, req.Location)
	if err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

// MarkAvailable is an unconditional single-row write: no precondition on the
// asset's current state. Holder and assignment timestamp are cleared and the
// check-in time stamped.
func (r *PostgresAssetRepository) MarkAvailable(ctx context.Context, assetID uuid.UUID) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE assets
		SET status = 'available', assigned_to = NULL, assigned_at = NULL, last_checkin = now()
		WHERE id = $1
	`, assetID)
	if err != nil {
		return fmt.Errorf("failed to mark asset available: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkInUse stamps the checkout time and flips status. The holder reference
// is intentionally left untouched: holder selection is a deferred step, so
// an in_use asset may have no holder.
func (r *PostgresAssetRepository) MarkInUse(ctx context.Context, assetID uuid.UUID) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE assets
		SET status = 'in_use', last_checkout = now()
		WHERE id = $1
	`, assetID)
	if err != nil {
		return fmt.Errorf("failed to mark asset in use: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresAssetRepository) CountAssetsByStatus(ctx context.Context) (models.AssetStats, error) {
	var stats models.AssetStats

	err := r.DB.QueryRowxContext(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE status = 'available'),
			count(*) FILTER (WHERE status = 'in_use'),
			count(*) FILTER (WHERE status = 'maintenance'),
			count(*) FILTER (WHERE status = 'lost'),
			count(*) FILTER (WHERE status = 'retired')
		FROM assets
	`).Scan(&stats.Total, &stats.Available, &stats.InUse, &stats.Maintenance, &stats.Lost, &stats.Retired)
	if err != nil {
		return models.AssetStats{}, fmt.Errorf("failed to count assets: %w", err)
	}
	return stats, nil
}
