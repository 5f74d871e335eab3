package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	Amount          decimal.Decimal `db:"amount"`
	Type            TransactionType `db:"transaction_type"`
	Category        string          `db:"category"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Amount          decimal.Decimal
	Type            TransactionType
	Category        string
	TransactionDate time.Time
}

// TransactionFilter specifies filters for listing transactions.
// Nil fields are not filtered on; a zero Limit returns every match.
type TransactionFilter struct {
	Type            *TransactionType
	Category        *string
	FromDate        *time.Time
	ToDate          *time.Time
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	InsertMany(ctx context.Context, creates []*TransactionCreate) ([]uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	ListAll(ctx context.Context) ([]*Transaction, error)
	Count(ctx context.Context, filter *TransactionFilter) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}
