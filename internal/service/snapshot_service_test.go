package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/assetdash/asset-dashboard-backend/internal/repository"
	"github.com/assetdash/asset-dashboard-backend/internal/testutil"
)

func TestSnapshotService_RunDailySnapshot(t *testing.T) {
	t.Run("records instrument snapshots and daily summary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mockMarket := testutil.NewMockMarketClient()
		svc := testutil.NewTestSnapshotService(t, db, mockMarket)

		// 10 x 70,000 KRW = 700,000 value, 600,000 cost
		testutil.NewManualAsset().Build(t, db)
		// 2 x 150 USD, converted at the fetched rate of 1,302
		testutil.NewManualAsset().
			WithID(testutil.MakeID()).
			WithSymbol("AAPL").
			WithName("Apple Inc").
			WithCurrency("USD").
			WithQuantity(2).
			WithBuyPrice(100).
			WithCurrentPrice(150).
			Build(t, db)

		summary, err := svc.RunDailySnapshot(context.Background())
		if err != nil {
			t.Fatalf("RunDailySnapshot failed: %v", err)
		}

		// Mock FX series climbs 0.5/day from 1,300 over 5 days, so the
		// latest close is 1,302
		if summary.TotalValue != 1090600 {
			t.Errorf("Expected total value 1090600, got %v", summary.TotalValue)
		}
		if summary.TotalCost != 860400 {
			t.Errorf("Expected total cost 860400, got %v", summary.TotalCost)
		}

		valuationRepo := repository.NewValuationRepository(db)

		history, err := valuationRepo.GetPortfolioHistory()
		if err != nil {
			t.Fatalf("GetPortfolioHistory failed: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("Expected 1 summary row, got %d", len(history))
		}

		snapshots, err := valuationRepo.GetSnapshotsOnDate(summary.Date)
		if err != nil {
			t.Fatalf("GetSnapshotsOnDate failed: %v", err)
		}
		if len(snapshots) != 2 {
			t.Fatalf("Expected 2 instrument snapshots, got %d", len(snapshots))
		}
		if snapshots[0].Symbol != "005930" {
			t.Errorf("Expected largest value first, got %s", snapshots[0].Symbol)
		}
		if snapshots[1].ExchangeRate != 1302 {
			t.Errorf("Expected USD snapshot at rate 1302, got %v", snapshots[1].ExchangeRate)
		}

		// Benchmark closes were persisted for both configured benchmarks
		benchmarks, err := valuationRepo.GetBenchmarkHistories([]string{"kospi", "sp500"})
		if err != nil {
			t.Fatalf("GetBenchmarkHistories failed: %v", err)
		}
		if len(benchmarks["kospi"]) != 5 || len(benchmarks["sp500"]) != 5 {
			t.Errorf("Expected 5 closes per benchmark, got kospi=%d sp500=%d",
				len(benchmarks["kospi"]), len(benchmarks["sp500"]))
		}
	})

	t.Run("re-running overwrites instead of duplicating", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mockMarket := testutil.NewMockMarketClient()
		svc := testutil.NewTestSnapshotService(t, db, mockMarket)

		testutil.NewManualAsset().Build(t, db)

		if _, err := svc.RunDailySnapshot(context.Background()); err != nil {
			t.Fatalf("First snapshot failed: %v", err)
		}
		summary, err := svc.RunDailySnapshot(context.Background())
		if err != nil {
			t.Fatalf("Second snapshot failed: %v", err)
		}

		valuationRepo := repository.NewValuationRepository(db)
		history, err := valuationRepo.GetPortfolioHistory()
		if err != nil {
			t.Fatalf("GetPortfolioHistory failed: %v", err)
		}
		if len(history) != 1 {
			t.Errorf("Expected 1 summary row after re-run, got %d", len(history))
		}

		snapshots, err := valuationRepo.GetSnapshotsOnDate(summary.Date)
		if err != nil {
			t.Fatalf("GetSnapshotsOnDate failed: %v", err)
		}
		if len(snapshots) != 1 {
			t.Errorf("Expected 1 instrument snapshot after re-run, got %d", len(snapshots))
		}
	})

	t.Run("fails when a market fetch fails", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mockMarket := testutil.NewMockMarketClient().WithError(errors.New("connection refused"))
		svc := testutil.NewTestSnapshotService(t, db, mockMarket)

		if _, err := svc.RunDailySnapshot(context.Background()); err == nil {
			t.Fatal("Expected snapshot to fail when market data is unavailable")
		}

		// Nothing was recorded
		valuationRepo := repository.NewValuationRepository(db)
		history, err := valuationRepo.GetPortfolioHistory()
		if err != nil {
			t.Fatalf("GetPortfolioHistory failed: %v", err)
		}
		if len(history) != 0 {
			t.Errorf("Expected no summary rows, got %d", len(history))
		}
	})
}

func TestSnapshotService_BackfillBenchmarks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mockMarket := testutil.NewMockMarketClient()
	svc := testutil.NewTestSnapshotService(t, db, mockMarket)

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -5)
	if err := svc.BackfillBenchmarks(start, end); err != nil {
		t.Fatalf("BackfillBenchmarks failed: %v", err)
	}

	valuationRepo := repository.NewValuationRepository(db)
	benchmarks, err := valuationRepo.GetBenchmarkHistories([]string{"kospi", "sp500"})
	if err != nil {
		t.Fatalf("GetBenchmarkHistories failed: %v", err)
	}
	if len(benchmarks["kospi"]) != 5 {
		t.Errorf("Expected 5 kospi closes, got %d", len(benchmarks["kospi"]))
	}
}
