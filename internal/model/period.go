package model

// Period selects the time window for return calculations. Periods form a
// closed set; unknown values are rejected at the boundary.
type Period string

const (
	Period1D  Period = "1D"
	Period1W  Period = "1W"
	Period1M  Period = "1M"
	Period3M  Period = "3M"
	PeriodYTD Period = "YTD"
	Period1Y  Period = "1Y"
)

// GroupBy selects the breakdown dimension for a period-return query.
type GroupBy string

const (
	GroupByTotal      GroupBy = "total"
	GroupByInstrument GroupBy = "instrument"
	GroupByBrokerage  GroupBy = "brokerage"
)

// PeriodRange describes the resolved window of a period-return query.
// Clamped is set when the requested window predates the earliest stored
// valuation and the baseline was moved up to the earliest available record.
type PeriodRange struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Clamped bool   `json:"clamped"`
}

// PortfolioReturn is the whole-portfolio cumulative result over a window.
// ProfitLoss is an absolute amount in the canonical currency, independent of
// the percentage return.
type PortfolioReturn struct {
	StartValue float64 `json:"start_value"`
	EndValue   float64 `json:"end_value"`
	ProfitLoss float64 `json:"profit_loss"`
	ReturnPct  float64 `json:"return_pct"`
}

// BenchmarkReturn is one benchmark's cumulative result over the same window,
// anchored to its own index level at window start. Alpha is the portfolio
// return minus this benchmark's return.
type BenchmarkReturn struct {
	StartValue float64 `json:"start_value"`
	EndValue   float64 `json:"end_value"`
	ReturnPct  float64 `json:"return_pct"`
	Alpha      float64 `json:"alpha"`
}

// DailyPoint is one date in the daily series. PortfolioValue and
// PortfolioReturn are nil on dates where no portfolio valuation was recorded;
// benchmark returns appear in the map only for dates the benchmark has data.
// Gaps stay gaps: nothing is interpolated.
type DailyPoint struct {
	Date             string             `json:"date"`
	PortfolioValue   *float64           `json:"portfolio_value,omitempty"`
	PortfolioReturn  *float64           `json:"portfolio_return,omitempty"`
	BenchmarkReturns map[string]float64 `json:"benchmark_returns,omitempty"`
}

// BreakdownItem is one group's (instrument or brokerage) result over the
// window. Groups with a non-positive start value are excluded because their
// return is undefined.
type BreakdownItem struct {
	Name       string  `json:"name"`
	StartValue float64 `json:"start_value"`
	EndValue   float64 `json:"end_value"`
	ProfitLoss float64 `json:"profit_loss"`
	ReturnPct  float64 `json:"return_pct"`
}

// PeriodResult is the full payload of a period-return query. It is computed
// per request and never stored.
type PeriodResult struct {
	Period      PeriodRange                `json:"period"`
	Portfolio   PortfolioReturn            `json:"portfolio"`
	Benchmarks  map[string]BenchmarkReturn `json:"benchmarks"`
	DailySeries []DailyPoint               `json:"daily_series"`
	Breakdown   []BreakdownItem            `json:"breakdown"`
}
