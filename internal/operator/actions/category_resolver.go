package actions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// categoryResolver looks up the transaction type of a category once per
// action, reading through the action's own transaction.
type categoryResolver struct {
	categories sqlconfig.ICategoryTable
	known      map[string]sqlconfig.TransactionType
}

func newCategoryResolver(categories sqlconfig.ICategoryTable) *categoryResolver {
	return &categoryResolver{
		categories: categories,
		known:      make(map[string]sqlconfig.TransactionType),
	}
}

func (r *categoryResolver) resolve(ctx context.Context, name string) (sqlconfig.TransactionType, error) {
	if t, ok := r.known[name]; ok {
		return t, nil
	}

	category, err := r.categories.FindByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}
	if err != nil {
		return "", err
	}

	r.known[name] = category.Type
	return category.Type, nil
}
