package analytics

import (
	"strings"
	"time"
)

// Period is a calendar window relative to "now".
type Period string

const (
	PeriodAll     Period = "All"
	PeriodWeek    Period = "Week"
	PeriodMonth   Period = "Month"
	PeriodQuarter Period = "Quarter"
	PeriodYear    Period = "Year"
)

var periods = []Period{PeriodAll, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}

// ParsePeriod matches a period name case-insensitively. Anything unknown is
// treated as PeriodAll.
func ParsePeriod(s string) Period {
	s = strings.TrimSpace(s)
	for _, p := range periods {
		if strings.EqualFold(s, string(p)) {
			return p
		}
	}
	return PeriodAll
}

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar day of date lies in [Start, End].
func (w Window) Contains(date time.Time) bool {
	d := Day(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Window returns the calendar window of the period around now. The second
// value is false for PeriodAll and for unknown periods, which have no bounds.
func (p Period) Window(now time.Time) (Window, bool) {
	today := Day(now)
	y, m, _ := today.Date()

	switch p {
	case PeriodWeek:
		// ISO week: Monday is day 0
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return Window{Start: start, End: start.AddDate(0, 0, 6)}, true
	case PeriodMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(0, 1, -1)}, true
	case PeriodQuarter:
		first := time.Month((int(m)-1)/3*3 + 1)
		start := time.Date(y, first, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(0, 3, -1)}, true
	case PeriodYear:
		return Window{
			Start: time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
		}, true
	}
	return Window{}, false
}

// Filter keeps the transactions whose date falls inside the period's window.
// PeriodAll returns txs itself. Transactions without a date never match a
// bounded window.
func Filter(txs []Transaction, period Period, now time.Time) []Transaction {
	window, bounded := period.Window(now)
	if !bounded {
		return txs
	}

	filtered := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date.IsZero() || !window.Contains(tx.Date) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}
