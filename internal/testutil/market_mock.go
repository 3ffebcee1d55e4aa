package testutil

import (
	"time"

	"github.com/assetdash/asset-dashboard-backend/internal/market"
)

// MockMarketClient is a mock implementation of market.Source for testing.
// It returns predefined close series instead of making actual API calls.
type MockMarketClient struct {
	// Series maps symbols to the series returned for them. Symbols without
	// an entry get an empty series.
	Series map[string]market.CloseSeries
	// MockError is the error to return from all query methods
	MockError error
	// QueryCount tracks how many times a query method was called
	QueryCount int
}

// NewMockMarketClient creates a mock market client with five days of close
// data for the default benchmark symbols and the USD/KRW FX pair.
func NewMockMarketClient() *MockMarketClient {
	return &MockMarketClient{
		Series: map[string]market.CloseSeries{
			"^KS11":    CreateMockCloseSeries("^KS11", "KRW", 2500, 5),
			"^GSPC":    CreateMockCloseSeries("^GSPC", "USD", 5000, 5),
			"USDKRW=X": CreateMockCloseSeries("USDKRW=X", "KRW", 1300, 5),
		},
	}
}

// RecentCloses mocks the recent close query with predefined test data.
func (m *MockMarketClient) RecentCloses(symbol string) (market.CloseSeries, error) {
	m.QueryCount++
	if m.MockError != nil {
		return market.CloseSeries{}, m.MockError
	}
	return m.Series[symbol], nil
}

// CloseHistory mocks the date range query with predefined test data.
func (m *MockMarketClient) CloseHistory(symbol string, _, _ time.Time) (market.CloseSeries, error) {
	m.QueryCount++
	if m.MockError != nil {
		return market.CloseSeries{}, m.MockError
	}
	return m.Series[symbol], nil
}

// WithError configures the mock to return the specified error.
func (m *MockMarketClient) WithError(err error) *MockMarketClient {
	m.MockError = err
	return m
}

// WithSeries configures the mock series for a symbol.
func (m *MockMarketClient) WithSeries(symbol string, series market.CloseSeries) *MockMarketClient {
	m.Series[symbol] = series
	return m
}

// CreateMockCloseSeries builds a close series with `days` daily closes ending
// yesterday, climbing 0.5 per day from the base level.
func CreateMockCloseSeries(symbol, currency string, base float64, days int) market.CloseSeries {
	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, time.UTC)

	closes := make([]market.Close, days)
	for i := 0; i < days; i++ {
		closes[i] = market.Close{
			Date:  yesterday.AddDate(0, 0, -days+i+1),
			Value: base + float64(i)*0.5,
		}
	}

	return market.CloseSeries{
		Symbol:   symbol,
		Currency: currency,
		Closes:   closes,
	}
}
