package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

// Insights is the text panel of the dashboard.
type Insights struct {
	Insights        []string
	Recommendations []string
}

// DashboardService computes chart payloads, insights and totals from the full
// transaction set. Results are memoized per calendar day until the next write
// flushes the cache.
type DashboardService struct {
	transactions transactionSource
	cache        *DashboardCache
	now          func() time.Time
}

// NewDashboardService creates a new DashboardService. A nil cache computes
// every request from scratch.
func NewDashboardService(transactions transactionSource, dashboardCache *DashboardCache) *DashboardService {
	return &DashboardService{
		transactions: transactions,
		cache:        dashboardCache,
		now:          time.Now,
	}
}

// Chart builds the chart of the given kind over the period.
func (s *DashboardService) Chart(ctx context.Context, kind analytics.ChartKind, period analytics.Period, vis analytics.Visibility) (analytics.Chart, error) {
	now := s.now()
	key := fmt.Sprintf("chart|%s|%s|%t|%t|%s", kind, period, vis.ShowIncome, vis.ShowExpense, now.Format("2006-01-02"))

	value, err := s.memoize(key, func() (interface{}, error) {
		transactions, err := s.load(ctx)
		if err != nil {
			return nil, err
		}
		return analytics.BuildChart(kind, transactions, period, vis, now)
	})
	if err != nil {
		return nil, err
	}
	return value.(analytics.Chart), nil
}

// Insights derives the observations and recommendations for the period.
func (s *DashboardService) Insights(ctx context.Context, period analytics.Period) (*Insights, error) {
	now := s.now()
	key := fmt.Sprintf("insights|%s|%s", period, now.Format("2006-01-02"))

	value, err := s.memoize(key, func() (interface{}, error) {
		transactions, err := s.load(ctx)
		if err != nil {
			return nil, err
		}
		filtered := analytics.Filter(transactions, period, now)
		return &Insights{
			Insights:        analytics.DeriveInsights(filtered),
			Recommendations: analytics.DeriveRecommendations(filtered),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*Insights), nil
}

// Stats returns the income, expense, balance and savings rate of the period.
func (s *DashboardService) Stats(ctx context.Context, period analytics.Period) (analytics.Totals, error) {
	now := s.now()
	key := fmt.Sprintf("stats|%s|%s", period, now.Format("2006-01-02"))

	value, err := s.memoize(key, func() (interface{}, error) {
		transactions, err := s.load(ctx)
		if err != nil {
			return nil, err
		}
		return analytics.ComputeTotals(analytics.Filter(transactions, period, now)), nil
	})
	if err != nil {
		return analytics.Totals{}, err
	}
	return value.(analytics.Totals), nil
}

const transactionsKey = "transactions"

// load returns the analytics view of every transaction, shared by all
// dashboard results until the cache is flushed.
func (s *DashboardService) load(ctx context.Context) ([]analytics.Transaction, error) {
	value, err := s.memoize(transactionsKey, func() (interface{}, error) {
		transactions, err := s.transactions.ListAllTransactions(ctx)
		if err != nil {
			return nil, err
		}
		return toAnalytics(transactions), nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]analytics.Transaction), nil
}

func (s *DashboardService) memoize(key string, compute func() (interface{}, error)) (interface{}, error) {
	if s.cache != nil {
		if value, ok := s.cache.Get(key); ok {
			return value, nil
		}
	}

	var generation uint64
	if s.cache != nil {
		generation = s.cache.Generation()
	}

	value, err := compute()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		// A write that landed while computing may not be reflected in value.
		s.cache.SetIfCurrent(key, value, generation)
	}
	return value, nil
}
