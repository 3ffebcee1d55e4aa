package model

import (
	"fmt"
	"strings"

	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
)

// ParsePeriod maps a raw query value to a period selector. Matching is
// case-insensitive; anything outside the closed set is rejected.
func ParsePeriod(raw string) (Period, error) {
	switch Period(strings.ToUpper(strings.TrimSpace(raw))) {
	case Period1D:
		return Period1D, nil
	case Period1W:
		return Period1W, nil
	case Period1M:
		return Period1M, nil
	case Period3M:
		return Period3M, nil
	case PeriodYTD:
		return PeriodYTD, nil
	case Period1Y:
		return Period1Y, nil
	}
	return "", fmt.Errorf("%w: %s", apperrors.ErrUnknownPeriod, raw)
}

// ParseGroupBy maps a raw query value to a breakdown dimension. An empty
// value defaults to the whole-portfolio total.
func ParseGroupBy(raw string) (GroupBy, error) {
	switch GroupBy(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return GroupByTotal, nil
	case GroupByTotal:
		return GroupByTotal, nil
	case GroupByInstrument:
		return GroupByInstrument, nil
	case GroupByBrokerage:
		return GroupByBrokerage, nil
	}
	return "", fmt.Errorf("%w: %s", apperrors.ErrUnknownGroupBy, raw)
}

// ParseAllocationMode maps a raw query value to an allocation mode. An empty
// value defaults to the by-type view.
func ParseAllocationMode(raw string) (AllocationMode, error) {
	switch AllocationMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return AllocationByType, nil
	case AllocationByType:
		return AllocationByType, nil
	case AllocationByInstrument:
		return AllocationByInstrument, nil
	}
	return "", fmt.Errorf("%w: %s", apperrors.ErrUnknownAllocationMode, raw)
}

// ParseAssetType maps a raw value to an asset type.
func ParseAssetType(raw string) (AssetType, error) {
	switch AssetType(strings.ToUpper(strings.TrimSpace(raw))) {
	case AssetTypeStock:
		return AssetTypeStock, nil
	case AssetTypeETF:
		return AssetTypeETF, nil
	case AssetTypeFund:
		return AssetTypeFund, nil
	case AssetTypeCrypto:
		return AssetTypeCrypto, nil
	case AssetTypeBond:
		return AssetTypeBond, nil
	case AssetTypeCash:
		return AssetTypeCash, nil
	case AssetTypeRealEstate:
		return AssetTypeRealEstate, nil
	case AssetTypeOther:
		return AssetTypeOther, nil
	}
	return "", fmt.Errorf("%w: %s", apperrors.ErrUnknownAssetType, raw)
}
