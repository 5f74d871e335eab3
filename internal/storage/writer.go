package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Committer ends an open database transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to one open transaction.
type Writer struct {
	tx           Committer
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewWriter(tx *bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Categories:   sqlconfig.NewCategoriesTable(tx),
	}
}

// NewWriterWithTables builds a Writer around the given tables, for callers
// that bring their own table implementations.
func NewWriterWithTables(tx Committer, transactions sqlconfig.ITransactionTable, categories sqlconfig.ICategoryTable) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Categories:   categories,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
