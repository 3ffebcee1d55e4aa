package market

import "time"

// chartResponse maps the raw JSON of the Yahoo Finance chart API. Only the
// fields the dashboard needs survive parsing: daily close levels plus basic
// symbol metadata.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency     string `json:"currency"`
				Symbol       string `json:"symbol"`
				ExchangeName string `json:"exchangeName"`
				Shortname    string `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// Close is one trading day's closing level for a symbol: an index level for
// benchmarks, a price for FX pairs. Date is truncated to midnight UTC.
type Close struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// CloseSeries is a parsed daily close history for one symbol.
type CloseSeries struct {
	Symbol   string  `json:"symbol"`
	Currency string  `json:"currency"`
	Closes   []Close `json:"closes"`
}

// Latest returns the most recent close in the series.
// The second return value is false for an empty series.
func (s CloseSeries) Latest() (Close, bool) {
	if len(s.Closes) == 0 {
		return Close{}, false
	}
	return s.Closes[len(s.Closes)-1], true
}
