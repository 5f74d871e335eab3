package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type fakeSource struct {
	transactions []Transaction
	err          error
	loads        int
}

func (f *fakeSource) ListAllTransactions(context.Context) ([]Transaction, error) {
	f.loads++
	return f.transactions, f.err
}

func dashboardTransactions() []Transaction {
	return []Transaction{
		{Amount: decimal.NewFromInt(100), Type: analytics.Income, Category: "SALARY", TransactionDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromInt(40), Type: analytics.Expense, Category: "FOOD", TransactionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromInt(500), Type: analytics.Expense, Category: "RENT", TransactionDate: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
	}
}

var dashboardNow = time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)

func newDashboardTestService(source *fakeSource, c *DashboardCache) *DashboardService {
	svc := NewDashboardService(source, c)
	svc.now = func() time.Time { return dashboardNow }
	return svc
}

// -- Chart tests --

func TestChart_IncomeVsExpenseMonth(t *testing.T) {
	svc := newDashboardTestService(&fakeSource{transactions: dashboardTransactions()}, nil)

	chart, err := svc.Chart(context.Background(), analytics.ChartIncomeVsExpense, analytics.PeriodMonth, analytics.DefaultVisibility())
	require.NoError(t, err)

	series, ok := chart.(analytics.TimeSeriesChart)
	require.True(t, ok)
	assert.Len(t, series.Series.Labels, 31)
	assert.Equal(t, 100.0, series.Series.Income[4])
	assert.Equal(t, 40.0, series.Series.Expense[9])
}

func TestChart_BalanceAll(t *testing.T) {
	svc := newDashboardTestService(&fakeSource{transactions: dashboardTransactions()}, nil)

	chart, err := svc.Chart(context.Background(), analytics.ChartBalanceDistribution, analytics.PeriodAll, analytics.DefaultVisibility())
	require.NoError(t, err)

	balance := chart.(analytics.BalanceChart)
	require.Len(t, balance.Points, 3)
	assert.Equal(t, "2023-12-01", balance.Points[0].Date)
	assert.Equal(t, -440.0, balance.Points[2].Balance)
}

func TestChart_UnknownKind(t *testing.T) {
	svc := newDashboardTestService(&fakeSource{}, nil)

	_, err := svc.Chart(context.Background(), "radar", analytics.PeriodAll, analytics.DefaultVisibility())
	assert.ErrorIs(t, err, analytics.ErrUnknownChartKind)
}

func TestChart_SourceError(t *testing.T) {
	svc := newDashboardTestService(&fakeSource{err: errors.New("database unavailable")}, nil)

	chart, err := svc.Chart(context.Background(), analytics.ChartTrendLine, analytics.PeriodAll, analytics.DefaultVisibility())
	assert.EqualError(t, err, "database unavailable")
	assert.Nil(t, chart)
}

// -- Insights / Stats tests --

func TestInsights_Period(t *testing.T) {
	svc := newDashboardTestService(&fakeSource{transactions: dashboardTransactions()}, nil)

	insights, err := svc.Insights(context.Background(), analytics.PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, []string{
		analytics.InsightSaving,
		"Your biggest expense category is FOOD.",
		analytics.InsightExcellentRate,
	}, insights.Insights)
	assert.Len(t, insights.Recommendations, 3)
}

func TestInsights_AllIncludesOlderMonths(t *testing.T) {
	svc := newDashboardTestService(&fakeSource{transactions: dashboardTransactions()}, nil)

	insights, err := svc.Insights(context.Background(), analytics.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, analytics.InsightNotSaving, insights.Insights[0])
	assert.Equal(t, "Your biggest expense category is RENT.", insights.Insights[1])
}

func TestStats(t *testing.T) {
	svc := newDashboardTestService(&fakeSource{transactions: dashboardTransactions()}, nil)

	stats, err := svc.Stats(context.Background(), analytics.PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stats.Income)
	assert.Equal(t, 40.0, stats.Expense)
	assert.Equal(t, 60.0, stats.Balance)
	assert.Equal(t, 60.0, stats.SavingsRate)
	assert.Equal(t, 2, stats.Count)
}

func TestStats_Empty(t *testing.T) {
	svc := newDashboardTestService(&fakeSource{}, nil)

	stats, err := svc.Stats(context.Background(), analytics.PeriodYear)
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.Zero(t, stats.SavingsRate)
}

// -- caching tests --

func TestDashboard_MemoizesUntilFlush(t *testing.T) {
	source := &fakeSource{transactions: dashboardTransactions()}
	c := NewDashboardCache(time.Minute)
	svc := newDashboardTestService(source, c)
	ctx := context.Background()

	_, err := svc.Stats(ctx, analytics.PeriodAll)
	require.NoError(t, err)
	_, err = svc.Chart(ctx, analytics.ChartTrendLine, analytics.PeriodAll, analytics.DefaultVisibility())
	require.NoError(t, err)
	_, err = svc.Stats(ctx, analytics.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 1, source.loads, "transactions are loaded once and shared")

	c.Flush()
	_, err = svc.Stats(ctx, analytics.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 2, source.loads)
}

// racingSource lands a write while the first load is in flight.
type racingSource struct {
	cache *DashboardCache
	loads int
}

func (r *racingSource) ListAllTransactions(context.Context) ([]Transaction, error) {
	r.loads++
	if r.loads == 1 {
		r.cache.Flush()
		return dashboardTransactions(), nil
	}
	return append(dashboardTransactions(), Transaction{
		Amount:          decimal.NewFromInt(900),
		Type:            analytics.Income,
		Category:        "BONUS",
		TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}), nil
}

func TestDashboard_WriteDuringLoadIsNotMemoized(t *testing.T) {
	c := NewDashboardCache(time.Minute)
	source := &racingSource{cache: c}
	svc := NewDashboardService(source, c)
	svc.now = func() time.Time { return dashboardNow }
	ctx := context.Background()

	stale, err := svc.Stats(ctx, analytics.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stale.Income)
	assert.Zero(t, c.ItemCount(), "results computed across a flush are dropped")

	fresh, err := svc.Stats(ctx, analytics.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, fresh.Income)
	assert.Equal(t, 2, source.loads)

	_, err = svc.Stats(ctx, analytics.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 2, source.loads, "later results memoize again")
}

func TestDashboardCache_SetIfCurrent(t *testing.T) {
	c := NewDashboardCache(time.Minute)

	gen := c.Generation()
	assert.True(t, c.SetIfCurrent("a", 1, gen))

	c.Flush()
	assert.False(t, c.SetIfCurrent("b", 2, gen))
	_, ok := c.Get("b")
	assert.False(t, ok)
	assert.True(t, c.SetIfCurrent("b", 2, c.Generation()))
}

func TestDashboard_VisibilityIsPartOfTheKey(t *testing.T) {
	svc := newDashboardTestService(&fakeSource{transactions: dashboardTransactions()}, NewDashboardCache(time.Minute))
	ctx := context.Background()

	both, err := svc.Chart(ctx, analytics.ChartCategoryAnalysis, analytics.PeriodAll, analytics.DefaultVisibility())
	require.NoError(t, err)

	vis := analytics.DefaultVisibility()
	vis.Toggle(analytics.Expense)
	incomeOnly, err := svc.Chart(ctx, analytics.ChartCategoryAnalysis, analytics.PeriodAll, vis)
	require.NoError(t, err)

	assert.NotEmpty(t, both.(analytics.CategoryChart).Categories.Expense)
	assert.Empty(t, incomeOnly.(analytics.CategoryChart).Categories.Expense)
}

func TestDashboard_NewDayMissesCache(t *testing.T) {
	source := &fakeSource{transactions: dashboardTransactions()}
	svc := newDashboardTestService(source, NewDashboardCache(time.Minute))
	ctx := context.Background()

	week1, err := svc.Stats(ctx, analytics.PeriodWeek)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) }
	week2, err := svc.Stats(ctx, analytics.PeriodWeek)
	require.NoError(t, err)

	assert.Zero(t, week1.Count)
	assert.Equal(t, 1, week2.Count)
}

// -- wiring test --

func TestNewService_WritesFlushDashboard(t *testing.T) {
	store, deps := newTestDeps(t)
	svc := NewService(store, deps.operator, time.Minute)
	ctx := context.Background()

	deps.transactions.EXPECT().ListAll(mock.Anything).Return([]*sqlconfig.Transaction{}, nil).Twice()
	deps.transactions.EXPECT().DeleteAll(mock.Anything).Return(int64(0), nil)

	_, err := svc.Dashboard.Stats(ctx, analytics.PeriodAll)
	require.NoError(t, err)
	_, err = svc.Dashboard.Stats(ctx, analytics.PeriodAll)
	require.NoError(t, err)

	_, err = svc.Transaction.ClearTransactions(ctx)
	require.NoError(t, err)

	_, err = svc.Dashboard.Stats(ctx, analytics.PeriodAll)
	require.NoError(t, err)
}
