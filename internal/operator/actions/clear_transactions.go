package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type ClearTransactions struct {
	Deleted int64
	IAction
}

func (c *ClearTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transactions.DeleteAll(ctx)
	if err != nil {
		return err
	}
	c.Deleted = deleted
	return nil
}
