package apperrors

import "errors"

// Invalid-input errors reject the whole request; the core never produces a
// partial result for a malformed query.
var (
	// ErrUnknownPeriod indicates a period selector outside the recognized set
	// (1D, 1W, 1M, 3M, YTD, 1Y).
	ErrUnknownPeriod = errors.New("unknown period")

	// ErrUnknownGroupBy indicates a group_by value outside total, instrument, brokerage.
	ErrUnknownGroupBy = errors.New("unknown group_by")

	// ErrUnknownAllocationMode indicates an allocation mode outside type, instrument.
	ErrUnknownAllocationMode = errors.New("unknown allocation mode")

	// ErrUnknownAssetType indicates an asset type outside the recognized enum.
	ErrUnknownAssetType = errors.New("unknown asset type")

	// ErrNegativeQuantity indicates a holding with a negative quantity.
	ErrNegativeQuantity = errors.New("quantity cannot be negative")

	// ErrNegativePrice indicates a holding with a negative buy or current price.
	// Zero prices are allowed (unpriced holdings).
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Rate errors. A holding in a currency with no FX rate cannot be silently
// priced at zero; that would corrupt every downstream aggregate.
var (
	// ErrMissingRate indicates a holding's currency has no FX rate entry and
	// no opted-in fallback rate.
	ErrMissingRate = errors.New("missing FX rate for currency")
)

// Domain entity errors represent missing entities in the system.
var (
	// ErrAssetNotFound indicates a manual asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("manual asset not found")

	// ErrNoValuationHistory indicates no daily valuations exist at all, so no
	// window can be resolved.
	ErrNoValuationHistory = errors.New("no valuation history available")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToRetrieveAssets    = errors.New("failed to retrieve manual assets")
	ErrFailedToRetrieveHoldings  = errors.New("failed to retrieve holdings")
	ErrFailedToRetrieveHistory   = errors.New("failed to retrieve valuation history")
	ErrFailedToRetrieveBenchmark = errors.New("failed to retrieve benchmark history")
	ErrFailedToRecordSnapshot    = errors.New("failed to record daily snapshot")
)
