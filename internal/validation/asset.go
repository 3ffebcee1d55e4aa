package validation

import (
	"strings"

	"github.com/assetdash/asset-dashboard-backend/internal/api/request"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

// ValidateCreateManualAsset validates a manual asset creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - name: Must be non-empty
//   - assetType: Must be a known asset type
//   - currency: Must be a three-letter code
//   - quantity: Must not be negative
//
// Prices default to zero when omitted; negative values are rejected.
func ValidateCreateManualAsset(req request.CreateManualAssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	validateAssetType(req.AssetType, errors)
	validateCurrency(req.Currency, errors)

	if req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.BuyPrice < 0 {
		errors["buyPrice"] = "buy price cannot be negative"
	}
	if req.CurrentPrice < 0 {
		errors["currentPrice"] = "current price cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateManualAsset validates a manual asset update request.
// Only provided fields are checked; an update carrying no fields is valid.
func ValidateUpdateManualAsset(req request.UpdateManualAssetRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.AssetType != nil {
		validateAssetType(*req.AssetType, errors)
	}
	if req.Currency != nil {
		validateCurrency(*req.Currency, errors)
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.BuyPrice != nil && *req.BuyPrice < 0 {
		errors["buyPrice"] = "buy price cannot be negative"
	}
	if req.CurrentPrice != nil && *req.CurrentPrice < 0 {
		errors["currentPrice"] = "current price cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateAssetType(assetType string, errors map[string]string) {
	if strings.TrimSpace(assetType) == "" {
		errors["assetType"] = "asset type is required"
		return
	}
	if _, err := model.ParseAssetType(assetType); err != nil {
		errors["assetType"] = "unknown asset type: " + assetType
	}
}

func validateCurrency(currency string, errors map[string]string) {
	trimmed := strings.TrimSpace(currency)
	if trimmed == "" {
		errors["currency"] = "currency is required"
		return
	}
	if len(trimmed) != 3 {
		errors["currency"] = "currency must be a three-letter code"
	}
}
