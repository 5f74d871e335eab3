package analytics

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CategoryBreakdown holds per-category totals for each transaction type in
// order of first appearance. A list is nil when its series is hidden.
type CategoryBreakdown struct {
	Income  []CategoryTotal `json:"income,omitempty"`
	Expense []CategoryTotal `json:"expense,omitempty"`
}

func (b CategoryBreakdown) HasData() bool {
	return len(b.Income) > 0 || len(b.Expense) > 0
}

// CategoryTotals sums amounts per category in a single pass, skipping any type
// whose series is hidden.
func CategoryTotals(txs []Transaction, vis Visibility) CategoryBreakdown {
	var breakdown CategoryBreakdown
	incomeIndex := make(map[string]int)
	expenseIndex := make(map[string]int)

	for _, tx := range txs {
		if !vis.Shows(tx.Type) {
			continue
		}
		switch tx.Type {
		case Income:
			breakdown.Income = addToCategory(breakdown.Income, incomeIndex, tx)
		case Expense:
			breakdown.Expense = addToCategory(breakdown.Expense, expenseIndex, tx)
		}
	}
	return breakdown
}

func addToCategory(totals []CategoryTotal, index map[string]int, tx Transaction) []CategoryTotal {
	if i, ok := index[tx.Category]; ok {
		totals[i].Value += tx.Amount
		return totals
	}
	index[tx.Category] = len(totals)
	return append(totals, CategoryTotal{Name: tx.Category, Value: tx.Amount})
}
