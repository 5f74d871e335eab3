package analytics

// Visibility records which series a chart currently shows. The two flags are
// independent and may both be off.
type Visibility struct {
	ShowIncome  bool `json:"showIncome"`
	ShowExpense bool `json:"showExpense"`
}

func DefaultVisibility() Visibility {
	return Visibility{ShowIncome: true, ShowExpense: true}
}

// Toggle flips the flag for t and leaves the other one alone.
func (v *Visibility) Toggle(t TransactionType) {
	switch t {
	case Income:
		v.ShowIncome = !v.ShowIncome
	case Expense:
		v.ShowExpense = !v.ShowExpense
	}
}

func (v Visibility) Shows(t TransactionType) bool {
	switch t {
	case Income:
		return v.ShowIncome
	case Expense:
		return v.ShowExpense
	}
	return false
}

// Any is false when both series are hidden.
func (v Visibility) Any() bool {
	return v.ShowIncome || v.ShowExpense
}
