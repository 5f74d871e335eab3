package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

var (
	ErrUnknownCategory     = errors.New("unknown category")
	ErrCategoryExists      = errors.New("category already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNothingToImport     = errors.New("nothing to import")
)

// IAction is a unit of work run by the operator inside one write transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
