package actions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateCategory struct {
	Name string
	Type sqlconfig.TransactionType
	IAction
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.Categories.FindByName(ctx, c.Name)
	if err == nil {
		return ErrCategoryExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	return writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		Name: c.Name,
		Type: c.Type,
	})
}
