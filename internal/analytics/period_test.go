package analytics_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/assetdash/asset-dashboard-backend/internal/analytics"
	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func valuations(start time.Time, values ...float64) []model.DailyValuation {
	rows := make([]model.DailyValuation, len(values))
	for i, v := range values {
		rows[i] = model.DailyValuation{Date: start.AddDate(0, 0, i), Value: v}
	}
	return rows
}

func benchmarkSeries(start time.Time, values ...float64) []model.BenchmarkPoint {
	points := make([]model.BenchmarkPoint, len(values))
	for i, v := range values {
		points[i] = model.BenchmarkPoint{Date: start.AddDate(0, 0, i), Value: v}
	}
	return points
}

// TestPeriodReturns_DailySeries pins the reference scenario: values
// [100, 105, 110] over three days give returns [0%, 5%, 10%] and a profit
// of 10 canonical units, unscaled.
func TestPeriodReturns_DailySeries(t *testing.T) {
	start := day(2025, time.March, 1)
	history := valuations(start, 100, 105, 110)

	result, err := analytics.PeriodReturns(history, nil, model.Period1W)
	if err != nil {
		t.Fatalf("PeriodReturns() returned unexpected error: %v", err)
	}

	if got := result.Portfolio.ProfitLoss; got != 10 {
		t.Errorf("profit_loss = %v, want 10", got)
	}
	if got := result.Portfolio.ReturnPct; math.Abs(got-10) > 1e-9 {
		t.Errorf("return_pct = %v, want 10", got)
	}

	if len(result.DailySeries) != 3 {
		t.Fatalf("Expected 3 daily points, got %d", len(result.DailySeries))
	}
	wantReturns := []float64{0, 5, 10}
	for i, want := range wantReturns {
		point := result.DailySeries[i]
		if point.PortfolioReturn == nil {
			t.Fatalf("Point %d has no portfolio return", i)
		}
		if math.Abs(*point.PortfolioReturn-want) > 1e-9 {
			t.Errorf("Point %d portfolio_return = %v, want %v", i, *point.PortfolioReturn, want)
		}
	}
}

// TestPeriodReturns_Alpha verifies alpha is exactly the difference of the two
// already-computed cumulative percentages, per benchmark.
func TestPeriodReturns_Alpha(t *testing.T) {
	start := day(2025, time.March, 1)
	history := valuations(start, 1000, 1020, 1100)
	benchmarks := map[string][]model.BenchmarkPoint{
		"kospi": benchmarkSeries(start, 2500, 2525, 2550),
		"sp500": benchmarkSeries(start, 5000, 4950, 5200),
	}

	result, err := analytics.PeriodReturns(history, benchmarks, model.Period1W)
	if err != nil {
		t.Fatalf("PeriodReturns() returned unexpected error: %v", err)
	}

	if len(result.Benchmarks) != 2 {
		t.Fatalf("Expected 2 benchmarks, got %d", len(result.Benchmarks))
	}
	for name, bench := range result.Benchmarks {
		wantAlpha := result.Portfolio.ReturnPct - bench.ReturnPct
		if math.Abs(bench.Alpha-wantAlpha) > 1e-9 {
			t.Errorf("%s alpha = %v, want %v", name, bench.Alpha, wantAlpha)
		}
	}

	kospi := result.Benchmarks["kospi"]
	if math.Abs(kospi.ReturnPct-2) > 1e-9 {
		t.Errorf("kospi return_pct = %v, want 2", kospi.ReturnPct)
	}
}

// TestPeriodReturns_WindowClamp verifies the sparse-history policy: a 1Y
// request over 30 days of data clamps to the earliest record and reports the
// clamp through an explicit flag rather than failing or hiding it.
func TestPeriodReturns_WindowClamp(t *testing.T) {
	start := day(2025, time.June, 1)
	values := make([]float64, 30)
	for i := range values {
		values[i] = 1000 + float64(i)
	}
	history := valuations(start, values...)

	result, err := analytics.PeriodReturns(history, nil, model.Period1Y)
	if err != nil {
		t.Fatalf("PeriodReturns() returned unexpected error: %v", err)
	}

	if !result.Period.Clamped {
		t.Error("Expected clamped window to be flagged")
	}
	if result.Period.Start != "2025-06-01" {
		t.Errorf("Window start = %s, want 2025-06-01 (earliest record)", result.Period.Start)
	}
	if result.Portfolio.StartValue != 1000 {
		t.Errorf("Baseline = %v, want earliest value 1000", result.Portfolio.StartValue)
	}
}

func TestPeriodReturns_SparseBenchmark(t *testing.T) {
	start := day(2025, time.March, 1)
	history := valuations(start, 100, 101, 102, 103, 104)

	// Benchmark only has data on days 0, 2 and 4 (markets closed in between).
	sparse := []model.BenchmarkPoint{
		{Date: start, Value: 200},
		{Date: start.AddDate(0, 0, 2), Value: 210},
		{Date: start.AddDate(0, 0, 4), Value: 220},
	}
	benchmarks := map[string][]model.BenchmarkPoint{"nasdaq": sparse}

	result, err := analytics.PeriodReturns(history, benchmarks, model.Period1W)
	if err != nil {
		t.Fatalf("PeriodReturns() returned unexpected error: %v", err)
	}

	if len(result.DailySeries) != 5 {
		t.Fatalf("Expected 5 daily points, got %d", len(result.DailySeries))
	}

	// Portfolio points survive benchmark gaps; benchmark returns appear only
	// on dates the benchmark has data, without interpolation.
	for i, point := range result.DailySeries {
		if point.PortfolioReturn == nil {
			t.Errorf("Point %d lost its portfolio return", i)
		}
		_, hasBench := point.BenchmarkReturns["nasdaq"]
		wantBench := i%2 == 0
		if hasBench != wantBench {
			t.Errorf("Point %d benchmark presence = %v, want %v", i, hasBench, wantBench)
		}
	}

	bench := result.Benchmarks["nasdaq"]
	if math.Abs(bench.ReturnPct-10) > 1e-9 {
		t.Errorf("nasdaq return_pct = %v, want 10", bench.ReturnPct)
	}
}

func TestPeriodReturns_AbsentBenchmarkOmitted(t *testing.T) {
	start := day(2025, time.March, 1)
	history := valuations(start, 100, 110)
	benchmarks := map[string][]model.BenchmarkPoint{
		"kospi": benchmarkSeries(start, 2500, 2550),
		"sp500": {}, // no recorded data
	}

	result, err := analytics.PeriodReturns(history, benchmarks, model.Period1W)
	if err != nil {
		t.Fatalf("PeriodReturns() returned unexpected error: %v", err)
	}

	if _, ok := result.Benchmarks["sp500"]; ok {
		t.Error("Benchmark without data should be omitted, not reported")
	}
	if _, ok := result.Benchmarks["kospi"]; !ok {
		t.Error("Benchmark with data missing from result")
	}
}

func TestPeriodReturns_Idempotent(t *testing.T) {
	start := day(2025, time.March, 1)
	history := valuations(start, 100, 102, 99, 105)
	benchmarks := map[string][]model.BenchmarkPoint{
		"kospi": benchmarkSeries(start, 2500, 2490, 2510, 2530),
	}

	first, err := analytics.PeriodReturns(history, benchmarks, model.Period1M)
	if err != nil {
		t.Fatalf("PeriodReturns() returned unexpected error: %v", err)
	}
	second, err := analytics.PeriodReturns(history, benchmarks, model.Period1M)
	if err != nil {
		t.Fatalf("PeriodReturns() returned unexpected error: %v", err)
	}

	if len(first.DailySeries) != len(second.DailySeries) {
		t.Fatalf("Series lengths differ: %d vs %d", len(first.DailySeries), len(second.DailySeries))
	}
	for i := range first.DailySeries {
		a, b := first.DailySeries[i], second.DailySeries[i]
		if a.Date != b.Date {
			t.Errorf("Point %d dates differ: %s vs %s", i, a.Date, b.Date)
		}
	}
	if first.Portfolio != second.Portfolio {
		t.Errorf("Portfolio results differ: %+v vs %+v", first.Portfolio, second.Portfolio)
	}
}

func TestResolveWindow(t *testing.T) {
	history := valuations(day(2024, time.January, 1), make([]float64, 500)...)
	latest := history[len(history)-1].Date

	tests := []struct {
		period    model.Period
		wantStart time.Time
	}{
		{model.Period1D, latest.AddDate(0, 0, -1)},
		{model.Period1W, latest.AddDate(0, 0, -7)},
		{model.Period1M, latest.AddDate(0, 0, -30)},
		{model.Period3M, latest.AddDate(0, 0, -90)},
		{model.Period1Y, latest.AddDate(0, 0, -365)},
		{model.PeriodYTD, day(latest.Year(), time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			window, err := analytics.ResolveWindow(tt.period, history)
			if err != nil {
				t.Fatalf("ResolveWindow() returned unexpected error: %v", err)
			}
			if !window.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", window.Start, tt.wantStart)
			}
			if !window.End.Equal(latest) {
				t.Errorf("End = %v, want latest date %v", window.End, latest)
			}
			if window.Clamped {
				t.Error("Window unexpectedly clamped")
			}
		})
	}
}

func TestResolveWindow_Errors(t *testing.T) {
	t.Run("unknown period", func(t *testing.T) {
		history := valuations(day(2025, time.March, 1), 100)
		_, err := analytics.ResolveWindow(model.Period("2W"), history)
		if !errors.Is(err, apperrors.ErrUnknownPeriod) {
			t.Errorf("Expected ErrUnknownPeriod, got %v", err)
		}
	})

	t.Run("empty history", func(t *testing.T) {
		_, err := analytics.ResolveWindow(model.Period1M, nil)
		if !errors.Is(err, apperrors.ErrNoValuationHistory) {
			t.Errorf("Expected ErrNoValuationHistory, got %v", err)
		}
	})
}
