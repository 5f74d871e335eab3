package analytics

import (
	"errors"
	"strings"
	"time"
)

// ChartKind names one of the dashboard charts.
type ChartKind string

const (
	ChartIncomeVsExpense     ChartKind = "income-vs-expense"
	ChartCategoryAnalysis    ChartKind = "category-analysis"
	ChartBalanceDistribution ChartKind = "balance-distribution"
	ChartTrendLine           ChartKind = "trend-line"
)

var ChartKinds = []ChartKind{
	ChartIncomeVsExpense,
	ChartCategoryAnalysis,
	ChartBalanceDistribution,
	ChartTrendLine,
}

var ErrUnknownChartKind = errors.New("unknown chart kind")

func ParseChartKind(s string) (ChartKind, error) {
	s = strings.TrimSpace(s)
	for _, kind := range ChartKinds {
		if strings.EqualFold(s, string(kind)) {
			return kind, nil
		}
	}
	return "", ErrUnknownChartKind
}

// Chart is the computed payload of one chart kind. The concrete types are
// TimeSeriesChart, CategoryChart, BalanceChart and TrendChart.
type Chart interface {
	Kind() ChartKind
	// HasData is false when the renderer should show a placeholder.
	HasData() bool
	chart()
}

// TimeSeriesChart feeds the income vs expense bar chart.
type TimeSeriesChart struct {
	Period Period
	Series TimeSeries
}

// CategoryChart feeds the income and expense pie charts.
type CategoryChart struct {
	Categories CategoryBreakdown
}

// BalanceChart feeds the running balance area chart.
type BalanceChart struct {
	Points []BalancePoint
}

// TrendChart feeds the daily trend line chart.
type TrendChart struct {
	Series TimeSeries
}

func (TimeSeriesChart) Kind() ChartKind { return ChartIncomeVsExpense }
func (CategoryChart) Kind() ChartKind   { return ChartCategoryAnalysis }
func (BalanceChart) Kind() ChartKind    { return ChartBalanceDistribution }
func (TrendChart) Kind() ChartKind      { return ChartTrendLine }

func (c TimeSeriesChart) HasData() bool { return c.Series.HasData() }
func (c CategoryChart) HasData() bool   { return c.Categories.HasData() }
func (c BalanceChart) HasData() bool    { return len(c.Points) > 0 }
func (c TrendChart) HasData() bool      { return c.Series.HasData() }

func (TimeSeriesChart) chart() {}
func (CategoryChart) chart()   {}
func (BalanceChart) chart()    {}
func (TrendChart) chart()      {}

// BuildChart narrows txs to the period and computes the chart of the given kind.
func BuildChart(kind ChartKind, txs []Transaction, period Period, vis Visibility, now time.Time) (Chart, error) {
	filtered := Filter(txs, period, now)

	switch kind {
	case ChartIncomeVsExpense:
		return TimeSeriesChart{Period: period, Series: BucketSeries(filtered, period, vis, now)}, nil
	case ChartCategoryAnalysis:
		return CategoryChart{Categories: CategoryTotals(filtered, vis)}, nil
	case ChartBalanceDistribution:
		return BalanceChart{Points: RunningBalance(filtered, vis)}, nil
	case ChartTrendLine:
		return TrendChart{Series: TrendSeries(filtered, vis)}, nil
	}
	return nil, ErrUnknownChartKind
}
