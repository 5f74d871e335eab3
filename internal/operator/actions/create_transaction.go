package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateTransaction inserts one transaction. An empty Type is taken from the
// category catalog.
type CreateTransaction struct {
	Amount          decimal.Decimal
	Type            sqlconfig.TransactionType
	Category        string
	TransactionDate time.Time

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	txType := t.Type
	if txType == "" {
		var err error
		txType, err = newCategoryResolver(writer.Categories).resolve(ctx, t.Category)
		if err != nil {
			return err
		}
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Amount:          t.Amount,
		Type:            txType,
		Category:        t.Category,
		TransactionDate: t.TransactionDate,
	})
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
