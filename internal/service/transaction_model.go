package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/exchange"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer. An empty Type on
// create is filled in from the category catalog.
type Transaction struct {
	ID              uuid.UUID
	Amount          decimal.Decimal
	Type            analytics.TransactionType
	Category        string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionFilter narrows a listing. Nil fields match everything.
type TransactionFilter struct {
	Type     *analytics.TransactionType
	Category *string
	FromDate *time.Time
	ToDate   *time.Time
}

func (f *TransactionFilter) toStorage() *sqlconfig.TransactionFilter {
	filter := &sqlconfig.TransactionFilter{}
	if f == nil {
		return filter
	}
	if f.Type != nil {
		t := transactionTypeToStorage(*f.Type)
		filter.Type = &t
	}
	if f.Category != nil {
		c := normalizeCategory(*f.Category)
		filter.Category = &c
	}
	filter.FromDate = f.FromDate
	filter.ToDate = f.ToDate
	return filter
}

func normalizeCategory(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// validate checks the fields a caller must supply and normalizes the category.
func (t *Transaction) validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidTransaction)
	}
	t.Category = normalizeCategory(t.Category)
	if t.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidTransaction)
	}
	if t.TransactionDate.IsZero() {
		return fmt.Errorf("%w: transaction date is required", ErrInvalidTransaction)
	}
	if t.Type != "" && t.Type != analytics.Income && t.Type != analytics.Expense {
		return fmt.Errorf("%w: %s", ErrInvalidTransaction, analytics.ErrUnknownTransactionType)
	}
	t.TransactionDate = analytics.Day(t.TransactionDate)
	return nil
}

func transactionTypeToStorage(t analytics.TransactionType) sqlconfig.TransactionType {
	return sqlconfig.TransactionType(t)
}

func transactionTypeFromStorage(t sqlconfig.TransactionType) analytics.TransactionType {
	return analytics.TransactionType(t)
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:              row.ID,
		Amount:          row.Amount,
		Type:            transactionTypeFromStorage(row.Type),
		Category:        row.Category,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}

func (t Transaction) toStorageCreate() *sqlconfig.TransactionCreate {
	return &sqlconfig.TransactionCreate{
		Amount:          t.Amount,
		Type:            transactionTypeToStorage(t.Type),
		Category:        t.Category,
		TransactionDate: t.TransactionDate,
	}
}

func (t Transaction) toAnalytics() analytics.Transaction {
	return analytics.Transaction{
		ID:       t.ID.String(),
		Amount:   t.Amount.InexactFloat64(),
		Type:     t.Type,
		Category: t.Category,
		Date:     analytics.Day(t.TransactionDate),
	}
}

func (t Transaction) toRecord() exchange.Record {
	return exchange.Record{
		ID:       t.ID.String(),
		Amount:   t.Amount,
		Type:     t.Type,
		Category: t.Category,
		Date:     t.TransactionDate,
	}
}

func toAnalytics(transactions []Transaction) []analytics.Transaction {
	converted := make([]analytics.Transaction, len(transactions))
	for i, tx := range transactions {
		converted[i] = tx.toAnalytics()
	}
	return converted
}
