package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/assetdash/asset-dashboard-backend/internal/api/request"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
	"github.com/assetdash/asset-dashboard-backend/internal/repository"
	"github.com/assetdash/asset-dashboard-backend/internal/validation"
)

// AssetService handles manual asset business logic. Manual assets are
// user-maintained positions that sit alongside linked brokerage holdings in
// every valuation; they are the only holdings source that is persisted and
// editable.
type AssetService struct {
	assetRepo *repository.AssetRepository
}

// NewAssetService creates a new AssetService with the provided repository.
func NewAssetService(assetRepo *repository.AssetRepository) *AssetService {
	return &AssetService{assetRepo: assetRepo}
}

// GetAssets retrieves all manual assets ordered by name.
func (s *AssetService) GetAssets() ([]model.ManualAsset, error) {
	return s.assetRepo.GetAssets()
}

// GetAsset retrieves a single manual asset by ID.
func (s *AssetService) GetAsset(assetID string) (model.ManualAsset, error) {
	return s.assetRepo.GetAssetOnID(assetID)
}

// CreateAsset validates and persists a new manual asset, assigning its ID.
func (s *AssetService) CreateAsset(req request.CreateManualAssetRequest) (model.ManualAsset, error) {
	if err := validation.ValidateCreateManualAsset(req); err != nil {
		return model.ManualAsset{}, err
	}

	assetType, err := model.ParseAssetType(req.AssetType)
	if err != nil {
		return model.ManualAsset{}, err
	}

	asset := model.ManualAsset{
		ID:           uuid.New().String(),
		Symbol:       req.Symbol,
		Name:         req.Name,
		AssetType:    assetType,
		Currency:     req.Currency,
		Quantity:     req.Quantity,
		BuyPrice:     req.BuyPrice,
		CurrentPrice: req.CurrentPrice,
		Brokerage:    req.Brokerage,
		UpdatedAt:    time.Now().UTC().Format("2006-01-02"),
	}

	if err := s.assetRepo.CreateAsset(asset); err != nil {
		return model.ManualAsset{}, fmt.Errorf("failed to create manual asset: %w", err)
	}

	return asset, nil
}

// UpdateAsset validates and applies a partial update to an existing manual
// asset, returning the updated record. Absent fields keep their stored value.
func (s *AssetService) UpdateAsset(assetID string, req request.UpdateManualAssetRequest) (model.ManualAsset, error) {
	if err := validation.ValidateUpdateManualAsset(req); err != nil {
		return model.ManualAsset{}, err
	}

	asset, err := s.assetRepo.GetAssetOnID(assetID)
	if err != nil {
		return model.ManualAsset{}, err
	}

	if req.Symbol != nil {
		asset.Symbol = *req.Symbol
	}
	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.AssetType != nil {
		assetType, err := model.ParseAssetType(*req.AssetType)
		if err != nil {
			return model.ManualAsset{}, err
		}
		asset.AssetType = assetType
	}
	if req.Currency != nil {
		asset.Currency = *req.Currency
	}
	if req.Quantity != nil {
		asset.Quantity = *req.Quantity
	}
	if req.BuyPrice != nil {
		asset.BuyPrice = *req.BuyPrice
	}
	if req.CurrentPrice != nil {
		asset.CurrentPrice = *req.CurrentPrice
	}
	if req.Brokerage != nil {
		asset.Brokerage = *req.Brokerage
	}
	asset.UpdatedAt = time.Now().UTC().Format("2006-01-02")

	if err := s.assetRepo.UpdateAsset(asset); err != nil {
		return model.ManualAsset{}, err
	}

	return asset, nil
}

// DeleteAsset removes a manual asset by ID.
func (s *AssetService) DeleteAsset(assetID string) error {
	return s.assetRepo.DeleteAsset(assetID)
}
