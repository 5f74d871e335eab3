package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

// transactionSource supplies the full transaction set the reports work on.
type transactionSource interface {
	ListAllTransactions(ctx context.Context) ([]Transaction, error)
}

// SummaryService computes per-month income, expense and net totals.
type SummaryService struct {
	transactions transactionSource
}

func NewSummaryService(transactions transactionSource) *SummaryService {
	return &SummaryService{transactions: transactions}
}

// MonthSummary totals one calendar month. A month with no transactions has
// zero totals.
func (s *SummaryService) MonthSummary(ctx context.Context, year int, month time.Month) (analytics.MonthSummary, error) {
	if month < time.January || month > time.December || year < 1 {
		return analytics.MonthSummary{}, fmt.Errorf("%w: %d-%02d", ErrInvalidMonth, year, int(month))
	}

	transactions, err := s.transactions.ListAllTransactions(ctx)
	if err != nil {
		return analytics.MonthSummary{}, err
	}
	return analytics.SummaryForMonth(toAnalytics(transactions), year, month), nil
}

// AllMonths returns one summary per month that has transactions, oldest first.
func (s *SummaryService) AllMonths(ctx context.Context) ([]analytics.MonthSummary, error) {
	transactions, err := s.transactions.ListAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlySummaries(toAnalytics(transactions)), nil
}
