package repository

import (
	"database/sql"
	"fmt"

	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

// AssetRepository provides data access methods for the manual_asset table.
// Manual assets are holdings the user entered by hand (real estate, accounts
// at brokerages without an API link, etc.).
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const manualAssetColumns = `id, symbol, name, asset_type, currency, quantity, buy_price, current_price, brokerage, updated_at`

// GetAssets retrieves all manual assets ordered by name.
// Returns an empty slice when no manual assets exist.
func (r *AssetRepository) GetAssets() ([]model.ManualAsset, error) {
	query := `
          SELECT ` + manualAssetColumns + `
          FROM manual_asset
          ORDER BY name
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query manual_asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.ManualAsset{}

	for rows.Next() {
		asset, err := scanManualAsset(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan manual_asset table results: %w", err)
		}
		assets = append(assets, asset)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating manual_asset table: %w", err)
	}

	return assets, nil
}

// GetAssetOnID retrieves a single manual asset by its ID.
func (r *AssetRepository) GetAssetOnID(assetID string) (model.ManualAsset, error) {
	query := `
          SELECT ` + manualAssetColumns + `
          FROM manual_asset
          WHERE id = ?
      `

	asset, err := scanManualAsset(r.db.QueryRow(query, assetID).Scan)
	if err == sql.ErrNoRows {
		return model.ManualAsset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.ManualAsset{}, fmt.Errorf("failed to query manual asset %s: %w", assetID, err)
	}

	return asset, nil
}

// CreateAsset inserts a new manual asset record.
func (r *AssetRepository) CreateAsset(asset model.ManualAsset) error {
	query := `
          INSERT INTO manual_asset (id, symbol, name, asset_type, currency, quantity, buy_price, current_price, brokerage, updated_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.Exec(query,
		asset.ID,
		asset.Symbol,
		asset.Name,
		string(asset.AssetType),
		asset.Currency,
		asset.Quantity,
		asset.BuyPrice,
		asset.CurrentPrice,
		asset.Brokerage,
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert manual asset: %w", err)
	}

	return nil
}

// UpdateAsset replaces the mutable fields of an existing manual asset.
// Returns ErrAssetNotFound when no row matches the ID.
func (r *AssetRepository) UpdateAsset(asset model.ManualAsset) error {
	query := `
          UPDATE manual_asset
          SET symbol = ?, name = ?, asset_type = ?, currency = ?,
              quantity = ?, buy_price = ?, current_price = ?, brokerage = ?,
              updated_at = ?
          WHERE id = ?
      `

	result, err := r.db.Exec(query,
		asset.Symbol,
		asset.Name,
		string(asset.AssetType),
		asset.Currency,
		asset.Quantity,
		asset.BuyPrice,
		asset.CurrentPrice,
		asset.Brokerage,
		asset.UpdatedAt,
		asset.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update manual asset %s: %w", asset.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// DeleteAsset removes a manual asset record.
// Returns ErrAssetNotFound when no row matches the ID.
func (r *AssetRepository) DeleteAsset(assetID string) error {
	result, err := r.db.Exec(`DELETE FROM manual_asset WHERE id = ?`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete manual asset %s: %w", assetID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// scanManualAsset scans one manual_asset row through the provided Scan function.
func scanManualAsset(scan func(dest ...any) error) (model.ManualAsset, error) {
	var asset model.ManualAsset
	var symbol sql.NullString
	var assetType string

	err := scan(
		&asset.ID,
		&symbol,
		&asset.Name,
		&assetType,
		&asset.Currency,
		&asset.Quantity,
		&asset.BuyPrice,
		&asset.CurrentPrice,
		&asset.Brokerage,
		&asset.UpdatedAt,
	)
	if err != nil {
		return model.ManualAsset{}, err
	}

	asset.Symbol = symbol.String
	asset.AssetType = model.AssetType(assetType)
	return asset, nil
}
