package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Manual asset records (real estate, off-platform holdings, etc.)
		CREATE TABLE manual_asset (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20),
			name VARCHAR(100) NOT NULL,
			asset_type VARCHAR(20) NOT NULL,
			currency VARCHAR(3) NOT NULL,
			quantity FLOAT NOT NULL,
			buy_price FLOAT NOT NULL,
			current_price FLOAT NOT NULL,
			brokerage VARCHAR(50) NOT NULL DEFAULT 'Manual',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Per-instrument daily valuation snapshots
		CREATE TABLE instrument_snapshot (
			date DATE NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			name VARCHAR(100) NOT NULL,
			asset_type VARCHAR(20) NOT NULL,
			currency VARCHAR(3) NOT NULL,
			brokerage VARCHAR(50) NOT NULL,
			quantity FLOAT NOT NULL,
			close_price FLOAT NOT NULL,
			avg_buy_price FLOAT NOT NULL,
			exchange_rate FLOAT NOT NULL,
			value FLOAT NOT NULL,
			PRIMARY KEY (date, symbol, brokerage)
		);

		CREATE INDEX idx_instrument_snapshot_date ON instrument_snapshot(date);

		-- Aggregated daily portfolio summary
		CREATE TABLE daily_summary (
			date DATE NOT NULL PRIMARY KEY,
			total_value FLOAT NOT NULL,
			total_cost FLOAT NOT NULL,
			profit_loss FLOAT NOT NULL,
			return_rate FLOAT NOT NULL
		);

		-- Benchmark index levels
		CREATE TABLE benchmark_close (
			name VARCHAR(20) NOT NULL,
			date DATE NOT NULL,
			value FLOAT NOT NULL,
			PRIMARY KEY (name, date)
		);

		-- FX rates to the canonical currency
		CREATE TABLE exchange_rate (
			currency VARCHAR(3) NOT NULL,
			date DATE NOT NULL,
			rate FLOAT NOT NULL,
			PRIMARY KEY (currency, date)
		);
	`

	_, err := db.Exec(schema)
	return err
}
