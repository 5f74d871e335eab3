package sqlconfig

import (
	"context"
	"time"
)

// Category represents a category record. The name is the primary key.
type Category struct {
	Name      string          `db:"name"`
	Type      TransactionType `db:"transaction_type"`
	CreatedAt time.Time       `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name string
	Type TransactionType
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	Type   *TransactionType
	Limit  int
	Offset int
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByName(ctx context.Context, name string) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) error
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
}
