package model

// DashboardSummary is the live valuation view: every current holding with its
// derived fields plus portfolio totals, all in the canonical currency. It is
// computed per request from current holdings and stored FX rates.
type DashboardSummary struct {
	Currency   string              `json:"currency"`
	TotalValue float64             `json:"total_value"`
	TotalCost  float64             `json:"total_cost"`
	ProfitLoss float64             `json:"profit_loss"`
	ReturnRate float64             `json:"return_rate"`
	Holdings   []NormalizedHolding `json:"holdings"`
}
