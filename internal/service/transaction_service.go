package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/exchange"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction business logic. Writes go through
// the operator and reads straight to storage.
type TransactionService struct {
	storage  *storage.Storage
	operator actionProcessor
	cache    *DashboardCache
	now      func() time.Time
}

// NewTransactionService creates a new TransactionService. dashboardCache may
// be nil; when set it is flushed after every write.
func NewTransactionService(store *storage.Storage, op actionProcessor, dashboardCache *DashboardCache) *TransactionService {
	return &TransactionService{
		storage:  store,
		operator: op,
		cache:    dashboardCache,
		now:      time.Now,
	}
}

func (s *TransactionService) invalidate() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

// CreateTransaction creates a new transaction and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction Transaction) (uuid.UUID, error) {
	if err := transaction.validate(); err != nil {
		return uuid.Nil, err
	}

	create := transaction.toStorageCreate()
	action := &actions.CreateTransaction{
		Amount:          create.Amount,
		Type:            create.Type,
		Category:        create.Category,
		TransactionDate: create.TransactionDate,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	s.invalidate()
	return action.CreatedID, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// ListTransactions returns a page of transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	storageFilter := filter.toStorage()
	storageFilter.Limit = limit
	storageFilter.Offset = offset
	storageFilter.MaxCreationTime = maxCreationTime

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nextCursor, nil
}

// CountTransactions returns how many transactions match the filter.
func (s *TransactionService) CountTransactions(ctx context.Context, filter *TransactionFilter) (int64, error) {
	return s.storage.Transactions.Count(ctx, filter.toStorage())
}

// ListAllTransactions returns every transaction ordered by date.
func (s *TransactionService) ListAllTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

// DeleteTransaction removes one transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	err := s.operator.Process(ctx, &actions.DeleteTransaction{ID: id})
	if errors.Is(err, actions.ErrTransactionNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.invalidate()
	return nil
}

// ClearTransactions removes every transaction and returns how many there were.
func (s *TransactionService) ClearTransactions(ctx context.Context) (int64, error) {
	action := &actions.ClearTransactions{}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}

	s.invalidate()
	return action.Deleted, nil
}

// ImportTransactions reads a csv or txt file and stores every row, or none
// when any row is invalid. It returns the number of rows imported.
func (s *TransactionService) ImportTransactions(ctx context.Context, r io.Reader, format exchange.Format) (int, error) {
	records, err := exchange.ReadRecords(r, format)
	if err != nil {
		return 0, err
	}

	rows := make([]*sqlconfig.TransactionCreate, len(records))
	for i, rec := range records {
		transaction := Transaction{
			Amount:          rec.Amount,
			Type:            rec.Type,
			Category:        rec.Category,
			TransactionDate: rec.Date,
		}
		if err := transaction.validate(); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows[i] = transaction.toStorageCreate()
	}

	action := &actions.ImportTransactions{Rows: rows}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}

	s.invalidate()
	return len(action.ImportedIDs), nil
}

// ExportTransactions writes every transaction and the monthly summaries in
// the given format.
func (s *TransactionService) ExportTransactions(ctx context.Context, w io.Writer, format exchange.Format) error {
	transactions, err := s.ListAllTransactions(ctx)
	if err != nil {
		return err
	}

	report := exchange.Report{
		Records:     make([]exchange.Record, len(transactions)),
		Summaries:   analytics.MonthlySummaries(toAnalytics(transactions)),
		GeneratedAt: s.now(),
	}
	for i, tx := range transactions {
		report.Records[i] = tx.toRecord()
	}

	return exchange.Write(w, format, report)
}
