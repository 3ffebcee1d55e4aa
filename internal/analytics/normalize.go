// Package analytics implements the valuation and performance core of the
// dashboard: currency normalization, allocation aggregation, period returns
// against benchmarks, and per-group breakdowns.
//
// Every function in this package is a pure function of its inputs. All I/O
// (fetching FX rates, reading valuation history) is performed by the caller
// and passed in as already-resolved data, so identical inputs always yield
// identical results and concurrent queries need no coordination.
package analytics

import (
	"fmt"

	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

// RateTable supplies currency-to-canonical FX rates for normalization.
// The canonical currency itself always converts at 1.0.
//
// A missing rate fails the entire request: a holding silently priced at zero
// would corrupt every downstream aggregate. Fallbacks is the one sanctioned
// exception; it holds conservative hard rates the caller explicitly opted in
// to, consulted only when Rates has no entry.
type RateTable struct {
	Canonical string
	Rates     map[string]float64
	Fallbacks map[string]float64
}

// Rate returns the conversion rate from the given currency to the canonical
// currency, or ErrMissingRate when no rate (and no opted-in fallback) exists.
func (t RateTable) Rate(currency string) (float64, error) {
	if currency == t.Canonical {
		return 1.0, nil
	}
	if rate, ok := t.Rates[currency]; ok {
		return rate, nil
	}
	if rate, ok := t.Fallbacks[currency]; ok {
		return rate, nil
	}
	return 0, fmt.Errorf("%w: %s", apperrors.ErrMissingRate, currency)
}

// Normalize converts each holding to the canonical currency and computes the
// derived valuation fields. The output preserves input order.
//
// Per holding:
//   - eval_value_local  = current_price * quantity
//   - cost_value_local  = buy_price * quantity
//   - eval_value_canonical = eval_value_local * rate(currency)
//   - return_rate = (current_price - buy_price) / buy_price * 100,
//     or 0 when the buy price is not positive (undefined ratio policy)
//
// A negative quantity or price, or a currency without a rate, rejects the
// whole request with a typed error and no partial result.
func Normalize(holdings []model.Holding, rates RateTable) ([]model.NormalizedHolding, error) {
	normalized := make([]model.NormalizedHolding, 0, len(holdings))

	for _, h := range holdings {
		if h.Quantity < 0 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNegativeQuantity, h.Name)
		}
		if h.BuyPrice < 0 || h.CurrentPrice < 0 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNegativePrice, h.Name)
		}

		rate, err := rates.Rate(h.Currency)
		if err != nil {
			return nil, err
		}

		n := model.NormalizedHolding{
			Holding:        h,
			EvalValueLocal: h.CurrentPrice * h.Quantity,
			CostValueLocal: h.BuyPrice * h.Quantity,
		}
		n.EvalValueCanonical = n.EvalValueLocal * rate
		if h.BuyPrice > 0 {
			n.ReturnRate = (h.CurrentPrice - h.BuyPrice) / h.BuyPrice * 100
		}

		normalized = append(normalized, n)
	}

	return normalized, nil
}
