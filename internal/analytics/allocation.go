package analytics

import (
	"fmt"
	"sort"

	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

// DefaultTopN is the number of per-instrument buckets kept before the
// remainder is folded into "Others".
const DefaultTopN = 10

// Canonical bucket labels.
const (
	LabelStocks = "Stocks"
	LabelCash   = "Cash & Equivalent"
	LabelOthers = "Others"
)

// palette is the fixed chart palette. Color assignment is rank-indexed and
// wraps when buckets exceed the palette size.
var palette = []string{
	"#3b82f6", "#8b5cf6", "#10b981", "#f59e0b", "#ef4444",
	"#06b6d4", "#ec4899", "#84cc16", "#f97316", "#6366f1", "#94a3b8",
}

// stockTypes is the fixed classification table for BY_TYPE allocation.
// Asset types not listed here (including CASH, OTHER and anything
// unrecognized) fall into the "Cash & Equivalent" bucket.
var stockTypes = map[model.AssetType]bool{
	model.AssetTypeStock:      true,
	model.AssetTypeETF:        true,
	model.AssetTypeFund:       true,
	model.AssetTypeCrypto:     true,
	model.AssetTypeBond:       true,
	model.AssetTypeRealEstate: true,
}

// Allocate groups normalized holdings into chart-ready buckets, descending
// by value with a stable tie-break on input order. topN only applies to
// instrument mode; pass 0 for the default.
//
// Both modes run through the same group-then-aggregate pass, so each holding
// lands in exactly one bucket and the bucket values sum to the total
// eval_value_canonical over priced holdings regardless of mode.
func Allocate(holdings []model.NormalizedHolding, mode model.AllocationMode, topN int) ([]model.AllocationBucket, error) {
	switch mode {
	case model.AllocationByType:
		groups := aggregate(holdings, func(h model.NormalizedHolding) string {
			if stockTypes[h.AssetType] {
				return LabelStocks
			}
			return LabelCash
		})
		// Buckets that ended up empty carry no information for the chart.
		kept := groups[:0]
		for _, g := range groups {
			if g.value > 0 {
				kept = append(kept, g)
			}
		}
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].value > kept[j].value
		})
		return finishBuckets(kept), nil

	case model.AllocationByInstrument:
		if topN <= 0 {
			topN = DefaultTopN
		}
		priced := make([]model.NormalizedHolding, 0, len(holdings))
		for _, h := range holdings {
			if h.EvalValueCanonical > 0 {
				priced = append(priced, h)
			}
		}
		groups := aggregate(priced, instrumentLabel)
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].value > groups[j].value
		})
		if len(groups) > topN {
			others := group{label: LabelOthers}
			for _, g := range groups[topN:] {
				others.value += g.value
			}
			groups = append(groups[:topN], others)
		}
		return finishBuckets(groups), nil
	}

	return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAllocationMode, mode)
}

// instrumentLabel identifies one instrument for per-instrument grouping.
// Display name is preferred; symbol covers unnamed positions. Holdings of
// the same instrument across brokerages merge into one bucket.
func instrumentLabel(h model.NormalizedHolding) string {
	if h.Name != "" {
		return h.Name
	}
	return h.Symbol
}

type group struct {
	label string
	value float64
}

// aggregate partitions holdings into groups keyed by keyFn, summing
// eval_value_canonical. Groups are ordered by first appearance, which keeps
// the downstream stable sort deterministic. Every holding contributes to
// exactly one group.
func aggregate(holdings []model.NormalizedHolding, keyFn func(model.NormalizedHolding) string) []group {
	index := make(map[string]int)
	groups := []group{}
	for _, h := range holdings {
		label := keyFn(h)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, group{label: label})
		}
		groups[i].value += h.EvalValueCanonical
	}
	return groups
}

// finishBuckets converts ordered groups into buckets with percentages and
// rank-indexed colors. A zero total yields zero percentages, never a divide
// by zero.
func finishBuckets(groups []group) []model.AllocationBucket {
	var total float64
	for _, g := range groups {
		total += g.value
	}

	buckets := make([]model.AllocationBucket, len(groups))
	for i, g := range groups {
		b := model.AllocationBucket{
			Label:     g.label,
			Value:     g.value,
			ColorRank: i,
			Color:     palette[i%len(palette)],
		}
		if total > 0 {
			b.Percent = g.value / total * 100
		}
		buckets[i] = b
	}
	return buckets
}
