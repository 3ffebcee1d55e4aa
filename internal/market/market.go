// Package market fetches daily close data from the Yahoo Finance chart API.
// The snapshot job uses it for benchmark index levels (e.g. ^KS11, ^GSPC,
// ^IXIC) and FX pairs (e.g. USDKRW=X); the analytics core never talks to it
// directly and only ever sees the persisted series.
package market

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Source is the market data interface consumed by the services. Client is
// the real implementation; tests substitute a mock.
type Source interface {
	RecentCloses(symbol string) (CloseSeries, error)
	CloseHistory(symbol string, startDate, endDate time.Time) (CloseSeries, error)
}

// Client fetches daily close data for index and FX symbols.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a market data client with default HTTP settings.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// RecentCloses fetches the last five trading days of close data for a symbol.
// Used by the snapshot job to pick up the latest available close.
func (c *Client) RecentCloses(symbol string) (CloseSeries, error) {
	url := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=5d", symbol)
	return c.fetchSeries(symbol, url)
}

// CloseHistory fetches daily close data for a symbol within a date range,
// both bounds inclusive. Used to backfill benchmark history.
func (c *Client) CloseHistory(symbol string, startDate, endDate time.Time) (CloseSeries, error) {
	url := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		symbol,
		startDate.Unix(),
		endDate.AddDate(0, 0, 1).Unix(),
	)
	return c.fetchSeries(symbol, url)
}

// fetchSeries executes the chart request and converts the response into a
// close series. Null closes (halted days) are skipped.
func (c *Client) fetchSeries(symbol, url string) (CloseSeries, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return CloseSeries{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CloseSeries{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return CloseSeries{}, err
	}

	var response chartResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return CloseSeries{}, err
	}

	if response.Chart.Error != nil {
		return CloseSeries{}, fmt.Errorf("chart error for %s: %s", symbol, *response.Chart.Error)
	}
	if len(response.Chart.Result) == 0 {
		return CloseSeries{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	result := response.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		return CloseSeries{}, fmt.Errorf("no price data returned for symbol %s", symbol)
	}
	if len(result.Indicators.Quote) == 0 {
		return CloseSeries{}, fmt.Errorf("no close prices returned for symbol %s", symbol)
	}

	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return CloseSeries{}, fmt.Errorf("mismatched data lengths for symbol %s", symbol)
	}

	series := CloseSeries{
		Symbol:   result.Meta.Symbol,
		Currency: result.Meta.Currency,
		Closes:   make([]Close, 0, len(closes)),
	}
	for i, ts := range result.Timestamp {
		if closes[i] == 0 {
			continue
		}
		series.Closes = append(series.Closes, Close{
			Date:  time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Value: closes[i],
		})
	}

	return series, nil
}
