package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

// ValuationRepository provides data access methods for the valuation history
// tables: instrument_snapshot, daily_summary and benchmark_close.
//
// Rows are appended once per trading day by the snapshot job; the analytics
// layer only ever reads ordered sequences from here and never mutates them.
type ValuationRepository struct {
	db *sql.DB
}

// NewValuationRepository creates a new ValuationRepository with the provided database connection.
func NewValuationRepository(db *sql.DB) *ValuationRepository {
	return &ValuationRepository{db: db}
}

// UpsertInstrumentSnapshot inserts or replaces the snapshot row for one
// instrument on one date. Re-running the snapshot job on the same day
// overwrites that day's rows rather than duplicating them.
func (r *ValuationRepository) UpsertInstrumentSnapshot(snap model.InstrumentSnapshot) error {
	query := `
          INSERT INTO instrument_snapshot
              (date, symbol, name, asset_type, currency, brokerage, quantity, close_price, avg_buy_price, exchange_rate, value)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
          ON CONFLICT(date, symbol, brokerage) DO UPDATE SET
              name = excluded.name,
              asset_type = excluded.asset_type,
              currency = excluded.currency,
              quantity = excluded.quantity,
              close_price = excluded.close_price,
              avg_buy_price = excluded.avg_buy_price,
              exchange_rate = excluded.exchange_rate,
              value = excluded.value
      `

	_, err := r.db.Exec(query,
		snap.Date.Format("2006-01-02"),
		snap.Symbol,
		snap.Name,
		string(snap.AssetType),
		snap.Currency,
		snap.Brokerage,
		snap.Quantity,
		snap.ClosePrice,
		snap.AvgBuyPrice,
		snap.ExchangeRate,
		snap.Value,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert instrument snapshot: %w", err)
	}

	return nil
}

// UpsertDailySummary inserts or replaces the aggregate summary row for one date.
func (r *ValuationRepository) UpsertDailySummary(summary model.DailySummary) error {
	query := `
          INSERT INTO daily_summary (date, total_value, total_cost, profit_loss, return_rate)
          VALUES (?, ?, ?, ?, ?)
          ON CONFLICT(date) DO UPDATE SET
              total_value = excluded.total_value,
              total_cost = excluded.total_cost,
              profit_loss = excluded.profit_loss,
              return_rate = excluded.return_rate
      `

	_, err := r.db.Exec(query,
		summary.Date.Format("2006-01-02"),
		summary.TotalValue,
		summary.TotalCost,
		summary.ProfitLoss,
		summary.ReturnRate,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily summary: %w", err)
	}

	return nil
}

// UpsertBenchmarkClose inserts or replaces one benchmark index level.
func (r *ValuationRepository) UpsertBenchmarkClose(name string, date time.Time, value float64) error {
	query := `
          INSERT INTO benchmark_close (name, date, value)
          VALUES (?, ?, ?)
          ON CONFLICT(name, date) DO UPDATE SET value = excluded.value
      `

	if _, err := r.db.Exec(query, name, date.Format("2006-01-02"), value); err != nil {
		return fmt.Errorf("failed to upsert benchmark close for %s: %w", name, err)
	}

	return nil
}

// GetPortfolioHistory retrieves the full portfolio valuation history in
// ascending date order. Window resolution happens in the analytics layer,
// which needs the earliest date for its clamping policy.
func (r *ValuationRepository) GetPortfolioHistory() ([]model.DailyValuation, error) {
	query := `
          SELECT date, total_value
          FROM daily_summary
          ORDER BY date ASC
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily_summary table: %w", err)
	}
	defer rows.Close()

	return scanValuations(rows)
}

// GetBenchmarkHistories retrieves each named benchmark's index levels in
// ascending date order. Benchmarks with no recorded data are simply absent
// from the returned map.
func (r *ValuationRepository) GetBenchmarkHistories(names []string) (map[string][]model.BenchmarkPoint, error) {
	histories := make(map[string][]model.BenchmarkPoint, len(names))

	query := `
          SELECT date, value
          FROM benchmark_close
          WHERE name = ?
          ORDER BY date ASC
      `

	for _, name := range names {
		rows, err := r.db.Query(query, name)
		if err != nil {
			return nil, fmt.Errorf("failed to query benchmark_close table for %s: %w", name, err)
		}

		points, err := scanBenchmarkPoints(rows)
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read benchmark %s: %w", name, err)
		}

		if len(points) > 0 {
			histories[name] = points
		}
	}

	return histories, nil
}

// GetGroupHistories retrieves per-group valuation history keyed by instrument
// name or brokerage, ascending by date within each group. Snapshots of one
// instrument held at several brokerages sum into a single series per date.
func (r *ValuationRepository) GetGroupHistories(groupBy model.GroupBy) (map[string][]model.DailyValuation, error) {
	var keyColumn string
	switch groupBy {
	case model.GroupByInstrument:
		keyColumn = "name"
	case model.GroupByBrokerage:
		keyColumn = "brokerage"
	default:
		return nil, fmt.Errorf("unsupported group key %q", groupBy)
	}

	query := `
          SELECT ` + keyColumn + `, date, SUM(value)
          FROM instrument_snapshot
          GROUP BY ` + keyColumn + `, date
          ORDER BY date ASC
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query instrument_snapshot table: %w", err)
	}
	defer rows.Close()

	histories := make(map[string][]model.DailyValuation)

	for rows.Next() {
		var key, dateStr string
		var value float64

		if err := rows.Scan(&key, &dateStr, &value); err != nil {
			return nil, fmt.Errorf("failed to scan instrument_snapshot results: %w", err)
		}

		date, err := ParseTime(dateStr)
		if err != nil {
			return nil, err
		}

		histories[key] = append(histories[key], model.DailyValuation{Date: date, Value: value})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instrument_snapshot table: %w", err)
	}

	return histories, nil
}

// GetSnapshotsOnDate retrieves all instrument snapshots for one date.
func (r *ValuationRepository) GetSnapshotsOnDate(date time.Time) ([]model.InstrumentSnapshot, error) {
	query := `
          SELECT date, symbol, name, asset_type, currency, brokerage,
                 quantity, close_price, avg_buy_price, exchange_rate, value
          FROM instrument_snapshot
          WHERE date = ?
          ORDER BY value DESC
      `

	rows, err := r.db.Query(query, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query instrument_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.InstrumentSnapshot{}

	for rows.Next() {
		var snap model.InstrumentSnapshot
		var dateStr, assetType string

		err := rows.Scan(
			&dateStr,
			&snap.Symbol,
			&snap.Name,
			&assetType,
			&snap.Currency,
			&snap.Brokerage,
			&snap.Quantity,
			&snap.ClosePrice,
			&snap.AvgBuyPrice,
			&snap.ExchangeRate,
			&snap.Value,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan instrument_snapshot results: %w", err)
		}

		snap.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, err
		}
		snap.AssetType = model.AssetType(assetType)

		snapshots = append(snapshots, snap)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instrument_snapshot table: %w", err)
	}

	return snapshots, nil
}

func scanValuations(rows *sql.Rows) ([]model.DailyValuation, error) {
	valuations := []model.DailyValuation{}

	for rows.Next() {
		var dateStr string
		var value float64

		if err := rows.Scan(&dateStr, &value); err != nil {
			return nil, fmt.Errorf("failed to scan valuation results: %w", err)
		}

		date, err := ParseTime(dateStr)
		if err != nil {
			return nil, err
		}

		valuations = append(valuations, model.DailyValuation{Date: date, Value: value})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating valuation results: %w", err)
	}

	return valuations, nil
}

func scanBenchmarkPoints(rows *sql.Rows) ([]model.BenchmarkPoint, error) {
	points := []model.BenchmarkPoint{}

	for rows.Next() {
		var dateStr string
		var value float64

		if err := rows.Scan(&dateStr, &value); err != nil {
			return nil, err
		}

		date, err := ParseTime(dateStr)
		if err != nil {
			return nil, err
		}

		points = append(points, model.BenchmarkPoint{Date: date, Value: value})
	}

	return points, rows.Err()
}
