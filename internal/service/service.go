package service

import (
	"context"
	"errors"
	"time"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidMonth       = errors.New("invalid month")

	ErrUnknownCategory = actions.ErrUnknownCategory
	ErrCategoryExists  = actions.ErrCategoryExists
	ErrNothingToImport = actions.ErrNothingToImport
)

// actionProcessor runs a write action in its own database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *CategoryService
	Summary     *SummaryService
	Dashboard   *DashboardService
}

// NewService wires the services around one storage and operator. A zero
// dashboardTTL turns dashboard caching off.
func NewService(store *storage.Storage, op actionProcessor, dashboardTTL time.Duration) *Service {
	var dashboardCache *DashboardCache
	if dashboardTTL > 0 {
		dashboardCache = NewDashboardCache(dashboardTTL)
	}

	transactions := NewTransactionService(store, op, dashboardCache)
	return &Service{
		Transaction: transactions,
		Category:    NewCategoryService(store, op),
		Summary:     NewSummaryService(transactions),
		Dashboard:   NewDashboardService(transactions, dashboardCache),
	}
}
