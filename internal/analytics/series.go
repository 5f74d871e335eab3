package analytics

import (
	"slices"
	"time"
)

// TimeSeries is a labelled x-axis with one value per label for each visible
// series. A hidden series is nil rather than zero-filled.
type TimeSeries struct {
	Labels  []string  `json:"labels"`
	Income  []float64 `json:"income,omitempty"`
	Expense []float64 `json:"expense,omitempty"`
}

// AggregatedPoint is one bucket of a TimeSeries.
type AggregatedPoint struct {
	Label   string   `json:"label"`
	Income  *float64 `json:"income,omitempty"`
	Expense *float64 `json:"expense,omitempty"`
}

// Points zips the series into per-bucket points. A hidden series is left out
// of every point rather than reported as zero.
func (s TimeSeries) Points() []AggregatedPoint {
	points := make([]AggregatedPoint, len(s.Labels))
	for i, label := range s.Labels {
		points[i].Label = label
		if s.Income != nil {
			income := s.Income[i]
			points[i].Income = &income
		}
		if s.Expense != nil {
			expense := s.Expense[i]
			points[i].Expense = &expense
		}
	}
	return points
}

func (s TimeSeries) HasData() bool {
	return len(s.Labels) > 0 && (s.Income != nil || s.Expense != nil)
}

const (
	weekBucketLayout  = "Mon 02"
	monthBucketLayout = "02 Jan"
	monthlyLayout     = "Jan 2006"
)

// BucketLayout is the label format used for a period's buckets.
func BucketLayout(period Period) string {
	switch period {
	case PeriodWeek:
		return weekBucketLayout
	case PeriodMonth:
		return monthBucketLayout
	}
	return monthlyLayout
}

func dailyBuckets(period Period) bool {
	return period == PeriodWeek || period == PeriodMonth
}

// BucketSeries sums income and expense per time bucket. Bounded periods get a
// bucket for every day (Week, Month) or month (Quarter, Year) of the window,
// zero or not. PeriodAll gets one monthly bucket per month present in txs.
// A transaction whose label matches no bucket is dropped.
func BucketSeries(txs []Transaction, period Period, vis Visibility, now time.Time) TimeSeries {
	if len(txs) == 0 {
		return TimeSeries{}
	}

	layout := BucketLayout(period)
	var labels []string
	if window, bounded := period.Window(now); bounded {
		labels = windowLabels(window, dailyBuckets(period), layout)
	} else {
		labels = presentMonthLabels(txs)
	}

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	income := make([]float64, len(labels))
	expense := make([]float64, len(labels))
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		i, ok := index[Day(tx.Date).Format(layout)]
		if !ok {
			continue
		}
		switch tx.Type {
		case Income:
			income[i] += tx.Amount
		case Expense:
			expense[i] += tx.Amount
		}
	}

	series := TimeSeries{Labels: labels}
	if vis.ShowIncome {
		series.Income = income
	}
	if vis.ShowExpense {
		series.Expense = expense
	}
	return series
}

func windowLabels(window Window, daily bool, layout string) []string {
	var labels []string
	if daily {
		for d := window.Start; !d.After(window.End); d = d.AddDate(0, 0, 1) {
			labels = append(labels, d.Format(layout))
		}
		return labels
	}

	for d := window.Start; !d.After(window.End); d = d.AddDate(0, 1, 0) {
		labels = append(labels, d.Format(layout))
	}
	return labels
}

func presentMonthLabels(txs []Transaction) []string {
	seen := make(map[time.Time]struct{})
	var months []time.Time
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		y, m, _ := tx.Date.Date()
		month := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		if _, ok := seen[month]; ok {
			continue
		}
		seen[month] = struct{}{}
		months = append(months, month)
	}

	slices.SortFunc(months, func(a, b time.Time) int { return a.Compare(b) })

	labels := make([]string, len(months))
	for i, month := range months {
		labels[i] = month.Format(monthlyLayout)
	}
	return labels
}

// TrendSeries groups by calendar day, one entry per day present in txs,
// ordered by the day itself.
func TrendSeries(txs []Transaction, vis Visibility) TimeSeries {
	type pair struct{ income, expense float64 }

	byDay := make(map[time.Time]*pair)
	var days []time.Time
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		day := Day(tx.Date)
		p, ok := byDay[day]
		if !ok {
			p = &pair{}
			byDay[day] = p
			days = append(days, day)
		}
		switch tx.Type {
		case Income:
			p.income += tx.Amount
		case Expense:
			p.expense += tx.Amount
		}
	}
	if len(days) == 0 {
		return TimeSeries{}
	}

	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	series := TimeSeries{Labels: make([]string, len(days))}
	income := make([]float64, len(days))
	expense := make([]float64, len(days))
	for i, day := range days {
		series.Labels[i] = day.Format(dayLayout)
		income[i] = byDay[day].income
		expense[i] = byDay[day].expense
	}
	if vis.ShowIncome {
		series.Income = income
	}
	if vis.ShowExpense {
		series.Expense = expense
	}
	return series
}
