package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

// dateFormat is the wire format for dates in period results.
const dateFormat = "2006-01-02"

// Window is the resolved date range of a period-return query. Clamped is set
// when the requested start predates the earliest stored valuation and the
// baseline was moved up to the earliest available record.
type Window struct {
	Start   time.Time
	End     time.Time
	Clamped bool
}

// ResolveWindow resolves a period selector against the available valuation
// history. The window end is the latest stored date; the start is a fixed
// calendar offset from it (YTD anchors on January 1 of the end date's year).
// A start before the earliest stored date clamps silently to that date and
// flags the clamp; it is never an error.
//
// history must be ordered ascending by date and non-empty.
func ResolveWindow(period model.Period, history []model.DailyValuation) (Window, error) {
	if len(history) == 0 {
		return Window{}, apperrors.ErrNoValuationHistory
	}

	earliest := history[0].Date
	latest := history[len(history)-1].Date

	var start time.Time
	switch period {
	case model.Period1D:
		start = latest.AddDate(0, 0, -1)
	case model.Period1W:
		start = latest.AddDate(0, 0, -7)
	case model.Period1M:
		start = latest.AddDate(0, 0, -30)
	case model.Period3M:
		start = latest.AddDate(0, 0, -90)
	case model.Period1Y:
		start = latest.AddDate(0, 0, -365)
	case model.PeriodYTD:
		start = time.Date(latest.Year(), time.January, 1, 0, 0, 0, 0, latest.Location())
	default:
		return Window{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownPeriod, period)
	}

	w := Window{Start: start, End: latest}
	if start.Before(earliest) {
		w.Start = earliest
		w.Clamped = true
	}
	return w, nil
}

// PeriodReturns computes cumulative portfolio and benchmark returns over the
// requested period, plus the daily percentage series for charting.
//
// The portfolio and each benchmark are anchored to their own value at window
// start (the benchmark baseline is its last level on or before the start, or
// its first available level). Portfolio and benchmarks are never compared in
// absolute terms, only in percentage change from their respective baselines.
//
// Benchmarks are an open set keyed by name; a benchmark with no data inside
// the window is omitted from the result, not an error. Dates where a series
// has no value are simply absent from that series' points; nothing is
// interpolated and a sparse benchmark never removes a portfolio point.
//
// history and each benchmark series must be ordered ascending by date.
// The Breakdown field of the result is left empty; see Breakdown.
func PeriodReturns(history []model.DailyValuation, benchmarks map[string][]model.BenchmarkPoint, period model.Period) (model.PeriodResult, error) {
	window, err := ResolveWindow(period, history)
	if err != nil {
		return model.PeriodResult{}, err
	}

	rows := valuationsInWindow(history, window)

	result := model.PeriodResult{
		Period: model.PeriodRange{
			Start:   window.Start.Format(dateFormat),
			End:     window.End.Format(dateFormat),
			Clamped: window.Clamped,
		},
		Benchmarks:  map[string]model.BenchmarkReturn{},
		DailySeries: []model.DailyPoint{},
		Breakdown:   []model.BreakdownItem{},
	}

	var baseline float64
	if len(rows) > 0 {
		baseline = rows[0].Value
		endValue := rows[len(rows)-1].Value
		result.Portfolio = model.PortfolioReturn{
			StartValue: baseline,
			EndValue:   endValue,
			ProfitLoss: endValue - baseline,
			ReturnPct:  changePct(baseline, endValue),
		}
	}

	// Cumulative benchmark returns, each against its own window-start level.
	baseByName := make(map[string]float64, len(benchmarks))
	for name, series := range benchmarks {
		if len(series) == 0 {
			continue
		}
		base := levelOnOrBefore(series, window.Start)
		end := levelOnOrBefore(series, window.End)
		baseByName[name] = base
		if base <= 0 {
			continue
		}
		pct := changePct(base, end)
		result.Benchmarks[name] = model.BenchmarkReturn{
			StartValue: base,
			EndValue:   end,
			ReturnPct:  pct,
			Alpha:      result.Portfolio.ReturnPct - pct,
		}
	}

	result.DailySeries = buildDailySeries(rows, benchmarks, baseByName, baseline, window)

	return result, nil
}

// buildDailySeries walks the union of portfolio and benchmark dates inside
// the window, emitting one point per date with whatever series have data.
func buildDailySeries(rows []model.DailyValuation, benchmarks map[string][]model.BenchmarkPoint, baseByName map[string]float64, baseline float64, window Window) []model.DailyPoint {
	valueByDate := make(map[string]float64, len(rows))
	dates := make(map[string]bool)
	for _, row := range rows {
		key := row.Date.Format(dateFormat)
		valueByDate[key] = row.Value
		dates[key] = true
	}

	benchByDate := make(map[string]map[string]float64)
	for name, series := range benchmarks {
		base := baseByName[name]
		if base <= 0 {
			continue
		}
		for _, p := range series {
			if p.Date.Before(window.Start) || p.Date.After(window.End) {
				continue
			}
			key := p.Date.Format(dateFormat)
			if benchByDate[key] == nil {
				benchByDate[key] = make(map[string]float64)
			}
			benchByDate[key][name] = changePct(base, p.Value)
			dates[key] = true
		}
	}

	ordered := make([]string, 0, len(dates))
	for d := range dates {
		ordered = append(ordered, d)
	}
	sort.Strings(ordered)

	series := make([]model.DailyPoint, 0, len(ordered))
	for _, key := range ordered {
		point := model.DailyPoint{Date: key}
		if value, ok := valueByDate[key]; ok {
			v := value
			point.PortfolioValue = &v
			if baseline > 0 {
				r := changePct(baseline, value)
				point.PortfolioReturn = &r
			}
		}
		if returns, ok := benchByDate[key]; ok {
			point.BenchmarkReturns = returns
		}
		series = append(series, point)
	}
	return series
}

// valuationsInWindow filters history rows to the resolved window.
func valuationsInWindow(history []model.DailyValuation, window Window) []model.DailyValuation {
	rows := make([]model.DailyValuation, 0, len(history))
	for _, row := range history {
		if row.Date.Before(window.Start) || row.Date.After(window.End) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// levelOnOrBefore returns the last index level on or before the target date,
// falling back to the first available level when the series starts later.
// The series must be ordered ascending and non-empty.
func levelOnOrBefore(series []model.BenchmarkPoint, target time.Time) float64 {
	level := series[0].Value
	for _, p := range series {
		if p.Date.After(target) {
			break
		}
		level = p.Value
	}
	return level
}

// changePct is the percentage change from base, 0 when base is not positive.
// Undefined ratios resolve to 0 rather than an error or a division by zero.
func changePct(base, value float64) float64 {
	if base <= 0 {
		return 0
	}
	return (value/base - 1) * 100
}
