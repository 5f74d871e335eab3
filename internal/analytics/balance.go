package analytics

import (
	"slices"
)

// BalancePoint is the running balance right after one transaction.
type BalancePoint struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

// RunningBalance walks txs in date order (stable on equal dates), adding
// visible income and subtracting visible expense. Every dated transaction
// emits a point whether or not it contributed. Both series hidden yields nil.
func RunningBalance(txs []Transaction, vis Visibility) []BalancePoint {
	if !vis.Any() {
		return nil
	}

	sorted := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		sorted = append(sorted, tx)
	}
	if len(sorted) == 0 {
		return nil
	}
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return Day(a.Date).Compare(Day(b.Date))
	})

	points := make([]BalancePoint, len(sorted))
	balance := 0.0
	for i, tx := range sorted {
		switch {
		case tx.Type == Income && vis.ShowIncome:
			balance += tx.Amount
		case tx.Type == Expense && vis.ShowExpense:
			balance -= tx.Amount
		}
		points[i] = BalancePoint{Date: Day(tx.Date).Format(dayLayout), Balance: balance}
	}
	return points
}
