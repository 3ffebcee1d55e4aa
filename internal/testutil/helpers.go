package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/assetdash/asset-dashboard-backend/internal/config"
	"github.com/assetdash/asset-dashboard-backend/internal/market"
	"github.com/assetdash/asset-dashboard-backend/internal/repository"
	"github.com/assetdash/asset-dashboard-backend/internal/service"
)

// TestValuationConfig returns the valuation settings used across service
// tests: KRW canonical currency with the default benchmark set.
func TestValuationConfig() config.ValuationConfig {
	return config.ValuationConfig{
		CanonicalCurrency: "KRW",
		Benchmarks: map[string]string{
			"kospi": "^KS11",
			"sp500": "^GSPC",
		},
	}
}

// NewTestSystemService creates a SystemService for testing.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db)
}

// NewTestAssetService creates an AssetService backed by the test database.
func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()
	return service.NewAssetService(repository.NewAssetRepository(db))
}

// NewTestDashboardService creates a DashboardService with no linked
// brokerage, so holdings come from manual assets alone.
func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()
	return service.NewDashboardService(
		repository.NewAssetRepository(db),
		repository.NewRateRepository(db),
		nil,
		TestValuationConfig(),
	)
}

// NewTestReturnsService creates a ReturnsService backed by the test database.
func NewTestReturnsService(t *testing.T, db *sql.DB) *service.ReturnsService {
	t.Helper()
	return service.NewReturnsService(
		repository.NewValuationRepository(db),
		TestValuationConfig().Benchmarks,
	)
}

// NewTestSnapshotService creates a SnapshotService with the given market
// source and no linked brokerage.
func NewTestSnapshotService(t *testing.T, db *sql.DB, marketClient market.Source) *service.SnapshotService {
	t.Helper()
	return service.NewSnapshotService(
		repository.NewAssetRepository(db),
		repository.NewRateRepository(db),
		repository.NewValuationRepository(db),
		marketClient,
		nil,
		TestValuationConfig(),
	)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}
