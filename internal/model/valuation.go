package model

import "time"

// DailyValuation is one row of valuation history: the portfolio (or one
// group within it) valued in the canonical currency on a given date.
// Rows are appended once per trading day by the snapshot job and are never
// mutated by the analytics layer.
type DailyValuation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// BenchmarkPoint is one recorded index level for a tracked benchmark.
// The value is an index level, not a currency amount; benchmark series are
// only ever compared in percentage-change terms from their own baseline.
type BenchmarkPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// DailySummary is the persisted aggregate snapshot for one date: total
// portfolio value, cost basis and profit/loss in the canonical currency.
type DailySummary struct {
	Date       time.Time `json:"date"`
	TotalValue float64   `json:"total_value"`
	TotalCost  float64   `json:"total_cost"`
	ProfitLoss float64   `json:"profit_loss"`
	ReturnRate float64   `json:"return_rate"`
}

// InstrumentSnapshot is the persisted per-instrument valuation for one date,
// used by the breakdown queries to reconstruct per-group history.
type InstrumentSnapshot struct {
	Date         time.Time `json:"date"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	AssetType    AssetType `json:"asset_type"`
	Currency     string    `json:"currency"`
	Brokerage    string    `json:"brokerage"`
	Quantity     float64   `json:"quantity"`
	ClosePrice   float64   `json:"close_price"`
	AvgBuyPrice  float64   `json:"avg_buy_price"`
	ExchangeRate float64   `json:"exchange_rate"`
	Value        float64   `json:"value"`
}
