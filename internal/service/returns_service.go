package service

import (
	"fmt"

	"github.com/assetdash/asset-dashboard-backend/internal/analytics"
	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
	"github.com/assetdash/asset-dashboard-backend/internal/repository"
)

// ReturnsService computes period returns against the stored valuation
// history. All window math happens in the analytics package; this layer only
// loads the history, benchmark series and group series the computation needs.
type ReturnsService struct {
	valuationRepo *repository.ValuationRepository
	benchmarks    map[string]string
}

// NewReturnsService creates a new ReturnsService. benchmarks maps benchmark
// names to their market data symbols; only named benchmarks are loaded.
func NewReturnsService(valuationRepo *repository.ValuationRepository, benchmarks map[string]string) *ReturnsService {
	return &ReturnsService{
		valuationRepo: valuationRepo,
		benchmarks:    benchmarks,
	}
}

// GetPeriodReturns computes the full period-return payload for one period.
// When groupBy selects instruments or brokerages, the payload carries a
// per-group breakdown computed over the same resolved window.
func (s *ReturnsService) GetPeriodReturns(period model.Period, groupBy model.GroupBy) (model.PeriodResult, error) {
	history, err := s.valuationRepo.GetPortfolioHistory()
	if err != nil {
		return model.PeriodResult{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveHistory, err)
	}

	benchmarks, err := s.valuationRepo.GetBenchmarkHistories(s.benchmarkNames())
	if err != nil {
		return model.PeriodResult{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveBenchmark, err)
	}

	result, err := analytics.PeriodReturns(history, benchmarks, period)
	if err != nil {
		return model.PeriodResult{}, err
	}

	if groupBy != model.GroupByTotal {
		breakdown, err := s.breakdown(history, period, groupBy)
		if err != nil {
			return model.PeriodResult{}, err
		}
		result.Breakdown = breakdown
	}

	return result, nil
}

// breakdown loads per-group valuation histories and computes each group's
// return over the window resolved for the whole portfolio, so every row of
// the payload describes the same span of days.
func (s *ReturnsService) breakdown(history []model.DailyValuation, period model.Period, groupBy model.GroupBy) ([]model.BreakdownItem, error) {
	window, err := analytics.ResolveWindow(period, history)
	if err != nil {
		return nil, err
	}

	groups, err := s.valuationRepo.GetGroupHistories(groupBy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveHistory, err)
	}

	return analytics.Breakdown(groups, window), nil
}

func (s *ReturnsService) benchmarkNames() []string {
	names := make([]string, 0, len(s.benchmarks))
	for name := range s.benchmarks {
		names = append(names, name)
	}
	return names
}
