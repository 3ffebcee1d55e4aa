package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/assetdash/asset-dashboard-backend/internal/analytics"
	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/config"
	"github.com/assetdash/asset-dashboard-backend/internal/market"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
	"github.com/assetdash/asset-dashboard-backend/internal/repository"
)

// SnapshotService records the once-daily valuation snapshot that everything
// in the returns API is computed from: per-instrument values, the portfolio
// summary, benchmark closes and the day's FX rates.
type SnapshotService struct {
	assetRepo     *repository.AssetRepository
	rateRepo      *repository.RateRepository
	valuationRepo *repository.ValuationRepository
	market        market.Source
	broker        HoldingsSource
	valuation     config.ValuationConfig
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(
	assetRepo *repository.AssetRepository,
	rateRepo *repository.RateRepository,
	valuationRepo *repository.ValuationRepository,
	marketClient market.Source,
	broker HoldingsSource,
	valuation config.ValuationConfig,
) *SnapshotService {
	return &SnapshotService{
		assetRepo:     assetRepo,
		rateRepo:      rateRepo,
		valuationRepo: valuationRepo,
		market:        marketClient,
		broker:        broker,
		valuation:     valuation,
	}
}

// RunDailySnapshot fetches market data, values all current holdings and
// persists the day's records. Running it twice on the same date overwrites
// that date's rows rather than duplicating them, so a manual re-run after a
// late price correction is safe.
func (s *SnapshotService) RunDailySnapshot(ctx context.Context) (model.DailySummary, error) {
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if err := s.refreshMarketData(date); err != nil {
		return model.DailySummary{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRecordSnapshot, err)
	}

	normalized, rates, err := s.valueHoldings(ctx)
	if err != nil {
		return model.DailySummary{}, err
	}

	summary := model.DailySummary{Date: date}
	for _, h := range normalized {
		rate, _ := rates.Rate(h.Currency)
		snap := model.InstrumentSnapshot{
			Date:         date,
			Symbol:       h.Symbol,
			Name:         h.Name,
			AssetType:    h.AssetType,
			Currency:     h.Currency,
			Brokerage:    h.Brokerage,
			Quantity:     h.Quantity,
			ClosePrice:   h.CurrentPrice,
			AvgBuyPrice:  h.BuyPrice,
			ExchangeRate: rate,
			Value:        round(h.EvalValueCanonical),
		}
		if err := s.valuationRepo.UpsertInstrumentSnapshot(snap); err != nil {
			return model.DailySummary{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRecordSnapshot, err)
		}

		summary.TotalValue += h.EvalValueCanonical
		summary.TotalCost += h.CostValueLocal * rate
	}

	summary.TotalValue = round(summary.TotalValue)
	summary.TotalCost = round(summary.TotalCost)
	summary.ProfitLoss = round(summary.TotalValue - summary.TotalCost)
	if summary.TotalCost > 0 {
		summary.ReturnRate = (summary.TotalValue - summary.TotalCost) / summary.TotalCost * 100
	}

	if err := s.valuationRepo.UpsertDailySummary(summary); err != nil {
		return model.DailySummary{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRecordSnapshot, err)
	}

	log.Printf("daily snapshot recorded for %s: %d holdings, total value %.2f %s",
		date.Format("2006-01-02"), len(normalized), summary.TotalValue, s.valuation.CanonicalCurrency)

	return summary, nil
}

// refreshMarketData fetches benchmark closes and FX rates concurrently and
// persists whatever came back. Each symbol is an independent fetch; one
// failing fails the snapshot so a partial market picture is never recorded.
func (s *SnapshotService) refreshMarketData(date time.Time) error {
	var g errgroup.Group

	for name, symbol := range s.valuation.Benchmarks {
		g.Go(func() error {
			series, err := s.market.RecentCloses(symbol)
			if err != nil {
				return fmt.Errorf("benchmark %s (%s): %w", name, symbol, err)
			}
			for _, c := range series.Closes {
				if err := s.valuationRepo.UpsertBenchmarkClose(name, c.Date, c.Value); err != nil {
					return err
				}
			}
			return nil
		})
	}

	for _, currency := range s.rateCurrencies() {
		g.Go(func() error {
			symbol := currency + s.valuation.CanonicalCurrency + "=X"
			series, err := s.market.RecentCloses(symbol)
			if err != nil {
				return fmt.Errorf("fx %s: %w", symbol, err)
			}
			latest, ok := series.Latest()
			if !ok {
				return fmt.Errorf("fx %s: no close data", symbol)
			}
			return s.rateRepo.UpsertRate(currency, date, latest.Value)
		})
	}

	return g.Wait()
}

// rateCurrencies lists the foreign currencies whose FX rates the snapshot
// keeps fresh. USD always refreshes since overseas brokerage positions and
// most manual assets are denominated in it.
func (s *SnapshotService) rateCurrencies() []string {
	return []string{"USD"}
}

func (s *SnapshotService) valueHoldings(ctx context.Context) ([]model.NormalizedHolding, analytics.RateTable, error) {
	holdings := []model.Holding{}

	if s.broker != nil && s.broker.Enabled() {
		linked, err := s.broker.Holdings(ctx)
		if err != nil {
			return nil, analytics.RateTable{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveHoldings, err)
		}
		holdings = append(holdings, linked...)
	}

	assets, err := s.assetRepo.GetAssets()
	if err != nil {
		return nil, analytics.RateTable{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveAssets, err)
	}
	for _, asset := range assets {
		holdings = append(holdings, asset.ToHolding())
	}

	rates, err := s.rateRepo.GetLatestRates()
	if err != nil {
		return nil, analytics.RateTable{}, fmt.Errorf("failed to load FX rates: %w", err)
	}

	table := analytics.RateTable{
		Canonical: s.valuation.CanonicalCurrency,
		Rates:     rates,
	}
	if s.valuation.FallbackUSDRate > 0 {
		table.Fallbacks = map[string]float64{"USD": s.valuation.FallbackUSDRate}
	}

	normalized, err := analytics.Normalize(holdings, table)
	if err != nil {
		return nil, analytics.RateTable{}, err
	}

	return normalized, table, nil
}

// BackfillBenchmarks loads historical closes for every configured benchmark
// over the given range. Meant for first-run seeding so period returns have
// benchmark baselines from day one.
func (s *SnapshotService) BackfillBenchmarks(startDate, endDate time.Time) error {
	for name, symbol := range s.valuation.Benchmarks {
		series, err := s.market.CloseHistory(symbol, startDate, endDate)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", apperrors.ErrFailedToRetrieveBenchmark, name, err)
		}
		for _, c := range series.Closes {
			if err := s.valuationRepo.UpsertBenchmarkClose(name, c.Date, c.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
