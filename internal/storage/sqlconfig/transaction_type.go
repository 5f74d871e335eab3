package sqlconfig

// TransactionType is the stored value of the transaction_type column.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)
