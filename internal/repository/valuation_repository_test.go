package repository_test

import (
	"testing"
	"time"

	"github.com/assetdash/asset-dashboard-backend/internal/model"
	"github.com/assetdash/asset-dashboard-backend/internal/repository"
	"github.com/assetdash/asset-dashboard-backend/internal/testutil"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestValuationRepository_UpsertDailySummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewValuationRepository(db)

	summary := model.DailySummary{
		Date:       day("2025-06-01"),
		TotalValue: 1000,
		TotalCost:  900,
		ProfitLoss: 100,
		ReturnRate: 11.11,
	}
	if err := repo.UpsertDailySummary(summary); err != nil {
		t.Fatalf("UpsertDailySummary failed: %v", err)
	}

	// Same date again with a corrected value overwrites the row
	summary.TotalValue = 1050
	if err := repo.UpsertDailySummary(summary); err != nil {
		t.Fatalf("Second UpsertDailySummary failed: %v", err)
	}

	history, err := repo.GetPortfolioHistory()
	if err != nil {
		t.Fatalf("GetPortfolioHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected 1 row after upsert, got %d", len(history))
	}
	if history[0].Value != 1050 {
		t.Errorf("Expected overwritten value 1050, got %v", history[0].Value)
	}
}

func TestValuationRepository_GetGroupHistories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewValuationRepository(db)

	// Samsung held at two brokerages on the same date
	testutil.SeedInstrumentSnapshot(t, db, "2025-06-01", "005930", "Samsung Electronics", "Korea Investment", 600)
	testutil.SeedInstrumentSnapshot(t, db, "2025-06-01", "005930", "Samsung Electronics", "Toss", 100)
	testutil.SeedInstrumentSnapshot(t, db, "2025-06-02", "005930", "Samsung Electronics", "Korea Investment", 620)
	testutil.SeedInstrumentSnapshot(t, db, "2025-06-01", "AAPL", "Apple Inc", "Korea Investment", 400)

	t.Run("by instrument sums across brokerages", func(t *testing.T) {
		groups, err := repo.GetGroupHistories(model.GroupByInstrument)
		if err != nil {
			t.Fatalf("GetGroupHistories failed: %v", err)
		}
		if len(groups) != 2 {
			t.Fatalf("Expected 2 instrument groups, got %d", len(groups))
		}

		samsung := groups["Samsung Electronics"]
		if len(samsung) != 2 {
			t.Fatalf("Expected 2 Samsung rows, got %d", len(samsung))
		}
		if samsung[0].Value != 700 {
			t.Errorf("Expected summed value 700 on first date, got %v", samsung[0].Value)
		}
		if !samsung[0].Date.Before(samsung[1].Date) {
			t.Error("Expected ascending date order")
		}
	})

	t.Run("by brokerage", func(t *testing.T) {
		groups, err := repo.GetGroupHistories(model.GroupByBrokerage)
		if err != nil {
			t.Fatalf("GetGroupHistories failed: %v", err)
		}
		if len(groups) != 2 {
			t.Fatalf("Expected 2 brokerage groups, got %d", len(groups))
		}
		if groups["Korea Investment"][0].Value != 1000 {
			t.Errorf("Expected Korea Investment total 1000, got %v", groups["Korea Investment"][0].Value)
		}
		if groups["Toss"][0].Value != 100 {
			t.Errorf("Expected Toss total 100, got %v", groups["Toss"][0].Value)
		}
	})

	t.Run("rejects unsupported group key", func(t *testing.T) {
		if _, err := repo.GetGroupHistories(model.GroupByTotal); err == nil {
			t.Error("Expected error for unsupported group key")
		}
	})
}

func TestValuationRepository_GetBenchmarkHistories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewValuationRepository(db)

	testutil.SeedBenchmarkClose(t, db, "kospi", "2025-06-01", 2500)
	testutil.SeedBenchmarkClose(t, db, "kospi", "2025-06-02", 2510)

	histories, err := repo.GetBenchmarkHistories([]string{"kospi", "sp500"})
	if err != nil {
		t.Fatalf("GetBenchmarkHistories failed: %v", err)
	}

	if len(histories["kospi"]) != 2 {
		t.Errorf("Expected 2 kospi points, got %d", len(histories["kospi"]))
	}
	if _, ok := histories["sp500"]; ok {
		t.Error("Expected sp500 to be absent without data")
	}
}
