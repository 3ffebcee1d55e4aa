package service

import (
	"context"
	"fmt"

	"github.com/assetdash/asset-dashboard-backend/internal/analytics"
	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/config"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
	"github.com/assetdash/asset-dashboard-backend/internal/repository"
)

// HoldingsSource supplies positions from a linked brokerage account. A
// disabled source contributes nothing and the dashboard runs on manual
// assets alone.
type HoldingsSource interface {
	Enabled() bool
	Holdings(ctx context.Context) ([]model.Holding, error)
}

// DashboardService computes the live dashboard views: the valuation summary
// and the allocation charts. Nothing here is persisted; every call fetches
// current holdings, normalizes them into the canonical currency, and
// aggregates on the fly.
type DashboardService struct {
	assetRepo *repository.AssetRepository
	rateRepo  *repository.RateRepository
	broker    HoldingsSource
	valuation config.ValuationConfig
}

// NewDashboardService creates a new DashboardService. broker may be a
// disabled client when no brokerage credentials are configured.
func NewDashboardService(
	assetRepo *repository.AssetRepository,
	rateRepo *repository.RateRepository,
	broker HoldingsSource,
	valuation config.ValuationConfig,
) *DashboardService {
	return &DashboardService{
		assetRepo: assetRepo,
		rateRepo:  rateRepo,
		broker:    broker,
		valuation: valuation,
	}
}

// GetSummary returns all current holdings with derived valuation fields plus
// portfolio totals in the canonical currency.
func (s *DashboardService) GetSummary(ctx context.Context) (model.DashboardSummary, error) {
	holdings, err := s.currentHoldings(ctx)
	if err != nil {
		return model.DashboardSummary{}, err
	}

	rates, err := s.rateTable()
	if err != nil {
		return model.DashboardSummary{}, err
	}

	normalized, err := analytics.Normalize(holdings, rates)
	if err != nil {
		return model.DashboardSummary{}, err
	}

	summary := model.DashboardSummary{
		Currency: s.valuation.CanonicalCurrency,
		Holdings: normalized,
	}
	totalCost := 0.0
	for _, h := range normalized {
		summary.TotalValue += h.EvalValueCanonical
		// Normalize already resolved every currency, so Rate cannot fail here.
		rate, _ := rates.Rate(h.Currency)
		totalCost += h.CostValueLocal * rate
	}
	summary.TotalCost = round(totalCost)
	summary.TotalValue = round(summary.TotalValue)
	summary.ProfitLoss = round(summary.TotalValue - summary.TotalCost)
	if summary.TotalCost > 0 {
		summary.ReturnRate = (summary.TotalValue - summary.TotalCost) / summary.TotalCost * 100
	}

	return summary, nil
}

// GetAllocation returns the allocation buckets for the requested mode. topN
// bounds the by-instrument view; values <= 0 use the default.
func (s *DashboardService) GetAllocation(ctx context.Context, mode model.AllocationMode, topN int) ([]model.AllocationBucket, error) {
	normalized, err := s.normalizedHoldings(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Allocate(normalized, mode, topN)
}

// normalizedHoldings gathers manual and linked holdings and runs them through
// the valuation normalizer with the latest stored FX rates.
func (s *DashboardService) normalizedHoldings(ctx context.Context) ([]model.NormalizedHolding, error) {
	holdings, err := s.currentHoldings(ctx)
	if err != nil {
		return nil, err
	}

	rates, err := s.rateTable()
	if err != nil {
		return nil, err
	}

	return analytics.Normalize(holdings, rates)
}

// currentHoldings merges linked brokerage positions with stored manual
// assets. Linked positions come first so brokerage rows lead the summary.
func (s *DashboardService) currentHoldings(ctx context.Context) ([]model.Holding, error) {
	holdings := []model.Holding{}

	if s.broker != nil && s.broker.Enabled() {
		linked, err := s.broker.Holdings(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveHoldings, err)
		}
		holdings = append(holdings, linked...)
	}

	assets, err := s.assetRepo.GetAssets()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveAssets, err)
	}
	for _, asset := range assets {
		holdings = append(holdings, asset.ToHolding())
	}

	return holdings, nil
}

func (s *DashboardService) rateTable() (analytics.RateTable, error) {
	rates, err := s.rateRepo.GetLatestRates()
	if err != nil {
		return analytics.RateTable{}, fmt.Errorf("failed to load FX rates: %w", err)
	}

	table := analytics.RateTable{
		Canonical: s.valuation.CanonicalCurrency,
		Rates:     rates,
	}
	if s.valuation.FallbackUSDRate > 0 {
		table.Fallbacks = map[string]float64{"USD": s.valuation.FallbackUSDRate}
	}
	return table, nil
}
