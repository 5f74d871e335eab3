package analytics

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// MonthSummary is the income, expense and net of one calendar month.
type MonthSummary struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// Key is the month as YYYY-MM.
func (s MonthSummary) Key() string {
	return fmt.Sprintf("%d-%02d", s.Year, int(s.Month))
}

// Text renders the summary the way the plain-text report prints it.
func (s MonthSummary) Text() string {
	return fmt.Sprintf("Summary for %s:\nIncome: ₹%s\nExpense: ₹%s\nNet: ₹%s",
		s.Key(), s.Income.StringFixed(2), s.Expense.StringFixed(2), s.Net.StringFixed(2))
}

func (s *MonthSummary) add(tx Transaction) {
	amount := decimal.NewFromFloat(tx.Amount)
	switch tx.Type {
	case Income:
		s.Income = s.Income.Add(amount)
	case Expense:
		s.Expense = s.Expense.Add(amount)
	}
	s.Net = s.Income.Sub(s.Expense)
}

// SummaryForMonth totals the transactions dated in the given month. A month
// with no transactions yields zero totals.
func SummaryForMonth(txs []Transaction, year int, month time.Month) MonthSummary {
	summary := MonthSummary{Year: year, Month: month}
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		y, m, _ := tx.Date.Date()
		if y == year && m == month {
			summary.add(tx)
		}
	}
	return summary
}

// MonthlySummaries returns one summary per month present in txs, oldest first.
func MonthlySummaries(txs []Transaction) []MonthSummary {
	byMonth := make(map[string]*MonthSummary)
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		y, m, _ := tx.Date.Date()
		key := fmt.Sprintf("%d-%02d", y, int(m))
		s, ok := byMonth[key]
		if !ok {
			s = &MonthSummary{Year: y, Month: m}
			byMonth[key] = s
		}
		s.add(tx)
	}

	summaries := make([]MonthSummary, 0, len(byMonth))
	for _, s := range byMonth {
		summaries = append(summaries, *s)
	}
	slices.SortFunc(summaries, func(a, b MonthSummary) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return int(a.Month) - int(b.Month)
	})
	return summaries
}
