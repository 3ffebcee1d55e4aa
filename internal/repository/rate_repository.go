package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// RateRepository provides data access methods for the exchange_rate table.
// Rates convert from a holding's currency to the canonical currency and are
// recorded by the snapshot job; the analytics layer receives them as an
// already-resolved lookup and never reads this table directly.
type RateRepository struct {
	db *sql.DB
}

// NewRateRepository creates a new RateRepository with the provided database connection.
func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

// UpsertRate inserts or replaces the rate for one currency on one date.
func (r *RateRepository) UpsertRate(currency string, date time.Time, rate float64) error {
	query := `
          INSERT INTO exchange_rate (currency, date, rate)
          VALUES (?, ?, ?)
          ON CONFLICT(currency, date) DO UPDATE SET rate = excluded.rate
      `

	if _, err := r.db.Exec(query, currency, date.Format("2006-01-02"), rate); err != nil {
		return fmt.Errorf("failed to upsert exchange rate for %s: %w", currency, err)
	}

	return nil
}

// GetLatestRates retrieves the most recent stored rate per currency.
func (r *RateRepository) GetLatestRates() (map[string]float64, error) {
	query := `
          SELECT currency, rate
          FROM exchange_rate er
          WHERE date = (SELECT MAX(date) FROM exchange_rate WHERE currency = er.currency)
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange_rate table: %w", err)
	}
	defer rows.Close()

	rates := make(map[string]float64)

	for rows.Next() {
		var currency string
		var rate float64

		if err := rows.Scan(&currency, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan exchange_rate results: %w", err)
		}

		rates[currency] = rate
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange_rate table: %w", err)
	}

	return rates, nil
}
