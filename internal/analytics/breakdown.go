package analytics

import (
	"sort"

	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

// Breakdown computes per-group start/end value and return over an already
// resolved window. groups maps a group name (instrument or brokerage) to its
// own valuation history, ordered ascending by date.
//
// The window must come from the same ResolveWindow call that produced the
// portfolio-level result, so the two can never disagree on the date range.
//
// Groups with no rows inside the window, or a non-positive start value
// (undefined return), are excluded. Output is ordered descending by end
// value, name ascending on ties for determinism.
func Breakdown(groups map[string][]model.DailyValuation, window Window) []model.BreakdownItem {
	items := make([]model.BreakdownItem, 0, len(groups))

	for name, history := range groups {
		rows := valuationsInWindow(history, window)
		if len(rows) == 0 {
			continue
		}
		start := rows[0].Value
		if start <= 0 {
			continue
		}
		end := rows[len(rows)-1].Value
		items = append(items, model.BreakdownItem{
			Name:       name,
			StartValue: start,
			EndValue:   end,
			ProfitLoss: end - start,
			ReturnPct:  changePct(start, end),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].EndValue != items[j].EndValue {
			return items[i].EndValue > items[j].EndValue
		}
		return items[i].Name < items[j].Name
	})

	return items
}
