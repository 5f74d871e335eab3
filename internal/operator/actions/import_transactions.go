package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// importBatchSize keeps each INSERT under the postgres limit of 65535 bind
// parameters (four per row).
const importBatchSize = 5000

// ImportTransactions inserts every row or none of them. Rows without a type
// take it from the category catalog.
type ImportTransactions struct {
	Rows []*sqlconfig.TransactionCreate

	ImportedIDs []uuid.UUID
	IAction
}

func (a *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(a.Rows) == 0 {
		return ErrNothingToImport
	}

	resolver := newCategoryResolver(writer.Categories)
	for i, row := range a.Rows {
		if row.Type != "" {
			continue
		}
		txType, err := resolver.resolve(ctx, row.Category)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		row.Type = txType
	}

	ids := make([]uuid.UUID, 0, len(a.Rows))
	for start := 0; start < len(a.Rows); start += importBatchSize {
		end := min(start+importBatchSize, len(a.Rows))
		batch, err := writer.Transactions.InsertMany(ctx, a.Rows[start:end])
		if err != nil {
			return fmt.Errorf("rows %d-%d: %w", start+1, end, err)
		}
		ids = append(ids, batch...)
	}

	a.ImportedIDs = ids
	return nil
}
