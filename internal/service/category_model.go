package service

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Category is an entry of the category catalog. Every category belongs to
// exactly one transaction type.
type Category struct {
	Name      string
	Type      analytics.TransactionType
	CreatedAt time.Time
}

// CategoryCursor identifies a position in a paginated result set.
type CategoryCursor struct {
	Position int
	Limit    int
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	return Category{
		Name:      row.Name,
		Type:      transactionTypeFromStorage(row.Type),
		CreatedAt: row.CreatedAt,
	}
}
