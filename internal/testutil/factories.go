package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

// ManualAssetBuilder provides a fluent interface for creating test manual assets.
//
// Example usage:
//
//	// Simple creation with defaults
//	asset := testutil.NewManualAsset().Build(t, db)
//
//	// Customized asset
//	asset := testutil.NewManualAsset().
//	    WithName("Bitcoin").
//	    WithAssetType(model.AssetTypeCrypto).
//	    WithCurrency("USD").
//	    WithQuantity(0.5).
//	    Build(t, db)
type ManualAssetBuilder struct {
	ID           string
	Symbol       string
	Name         string
	AssetType    model.AssetType
	Currency     string
	Quantity     float64
	BuyPrice     float64
	CurrentPrice float64
	Brokerage    string
}

// NewManualAsset creates a ManualAssetBuilder with sensible defaults.
func NewManualAsset() *ManualAssetBuilder {
	return &ManualAssetBuilder{
		ID:           MakeID(),
		Symbol:       "005930",
		Name:         "Samsung Electronics",
		AssetType:    model.AssetTypeStock,
		Currency:     "KRW",
		Quantity:     10,
		BuyPrice:     60000,
		CurrentPrice: 70000,
		Brokerage:    "Manual",
	}
}

// WithID sets a custom ID.
func (b *ManualAssetBuilder) WithID(id string) *ManualAssetBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom symbol.
func (b *ManualAssetBuilder) WithSymbol(symbol string) *ManualAssetBuilder {
	b.Symbol = symbol
	return b
}

// WithName sets a custom name.
func (b *ManualAssetBuilder) WithName(name string) *ManualAssetBuilder {
	b.Name = name
	return b
}

// WithAssetType sets a custom asset type.
func (b *ManualAssetBuilder) WithAssetType(assetType model.AssetType) *ManualAssetBuilder {
	b.AssetType = assetType
	return b
}

// WithCurrency sets a custom currency.
func (b *ManualAssetBuilder) WithCurrency(currency string) *ManualAssetBuilder {
	b.Currency = currency
	return b
}

// WithQuantity sets a custom quantity.
func (b *ManualAssetBuilder) WithQuantity(quantity float64) *ManualAssetBuilder {
	b.Quantity = quantity
	return b
}

// WithBuyPrice sets a custom buy price.
func (b *ManualAssetBuilder) WithBuyPrice(price float64) *ManualAssetBuilder {
	b.BuyPrice = price
	return b
}

// WithCurrentPrice sets a custom current price.
func (b *ManualAssetBuilder) WithCurrentPrice(price float64) *ManualAssetBuilder {
	b.CurrentPrice = price
	return b
}

// WithBrokerage sets a custom brokerage label.
func (b *ManualAssetBuilder) WithBrokerage(brokerage string) *ManualAssetBuilder {
	b.Brokerage = brokerage
	return b
}

// Build creates the manual asset in the database and returns it.
func (b *ManualAssetBuilder) Build(t *testing.T, db *sql.DB) model.ManualAsset {
	t.Helper()

	updatedAt := time.Now().UTC().Format("2006-01-02")

	query := `
		INSERT INTO manual_asset (id, symbol, name, asset_type, currency, quantity, buy_price, current_price, brokerage, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Symbol, b.Name, string(b.AssetType), b.Currency,
		b.Quantity, b.BuyPrice, b.CurrentPrice, b.Brokerage, updatedAt)
	if err != nil {
		t.Fatalf("Failed to create test manual asset: %v", err)
	}

	return model.ManualAsset{
		ID:           b.ID,
		Symbol:       b.Symbol,
		Name:         b.Name,
		AssetType:    b.AssetType,
		Currency:     b.Currency,
		Quantity:     b.Quantity,
		BuyPrice:     b.BuyPrice,
		CurrentPrice: b.CurrentPrice,
		Brokerage:    b.Brokerage,
		UpdatedAt:    updatedAt,
	}
}

// Seed helpers for the valuation history tables. These write rows directly so
// service tests can shape history without going through the snapshot job.

// SeedDailySummary inserts one daily_summary row.
func SeedDailySummary(t *testing.T, db *sql.DB, date string, totalValue, totalCost float64) {
	t.Helper()

	profitLoss := totalValue - totalCost
	returnRate := 0.0
	if totalCost > 0 {
		returnRate = profitLoss / totalCost * 100
	}

	_, err := db.Exec(`
		INSERT INTO daily_summary (date, total_value, total_cost, profit_loss, return_rate)
		VALUES (?, ?, ?, ?, ?)
	`, date, totalValue, totalCost, profitLoss, returnRate)
	if err != nil {
		t.Fatalf("Failed to seed daily summary: %v", err)
	}
}

// SeedInstrumentSnapshot inserts one instrument_snapshot row with the given
// per-instrument value. Prices and the exchange rate are derived trivially
// from the value since the breakdown queries only aggregate value.
func SeedInstrumentSnapshot(t *testing.T, db *sql.DB, date, symbol, name, brokerage string, value float64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO instrument_snapshot (date, symbol, name, asset_type, currency, brokerage, quantity, close_price, avg_buy_price, exchange_rate, value)
		VALUES (?, ?, ?, 'STOCK', 'KRW', ?, 1, ?, ?, 1, ?)
	`, date, symbol, name, brokerage, value, value, value)
	if err != nil {
		t.Fatalf("Failed to seed instrument snapshot: %v", err)
	}
}

// SeedBenchmarkClose inserts one benchmark_close row.
func SeedBenchmarkClose(t *testing.T, db *sql.DB, name, date string, value float64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO benchmark_close (name, date, value)
		VALUES (?, ?, ?)
	`, name, date, value)
	if err != nil {
		t.Fatalf("Failed to seed benchmark close: %v", err)
	}
}

// SeedExchangeRate inserts one exchange_rate row.
func SeedExchangeRate(t *testing.T, db *sql.DB, currency, date string, rate float64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO exchange_rate (currency, date, rate)
		VALUES (?, ?, ?)
	`, currency, date, rate)
	if err != nil {
		t.Fatalf("Failed to seed exchange rate: %v", err)
	}
}
