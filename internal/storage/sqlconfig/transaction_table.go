package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{"id", "amount", "transaction_type", "category", "transaction_date", "created_at"}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to a database handle or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	ids, err := t.InsertMany(ctx, []*TransactionCreate{create})
	if err != nil {
		return uuid.Nil, err
	}
	return ids[0], nil
}

// InsertMany writes every row in a single statement and returns the generated
// IDs. Postgres does not promise RETURNING order, so callers must not match IDs
// to rows by position.
func (t *TransactionsTable) InsertMany(ctx context.Context, creates []*TransactionCreate) ([]uuid.UUID, error) {
	if len(creates) == 0 {
		return nil, nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(transactionsTableName, "amount", "transaction_type", "category", "transaction_date"),
	}
	for _, create := range creates {
		queryMods = append(queryMods, im.Values(psql.Arg(
			create.Amount,
			create.Type,
			create.Category,
			create.TransactionDate,
		)))
	}
	queryMods = append(queryMods, im.Returning("id"))

	return bob.All(ctx, t.exec, psql.Insert(queryMods...), scan.SingleColumnMapper[uuid.UUID])
}

// List returns transactions matching the filter, newest first. Nil filter returns all.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}
	queryMods = append(queryMods, filterMods(filter)...)
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	return t.all(ctx, psql.Select(queryMods...))
}

// ListAll returns every transaction in date order.
func (t *TransactionsTable) ListAll(ctx context.Context) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.OrderBy(psql.Quote("transaction_date")).Asc(),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
	)
	return t.all(ctx, q)
}

// Count returns the number of transactions matching the filter, ignoring paging.
func (t *TransactionsTable) Count(ctx context.Context, filter *TransactionFilter) (int64, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("count(*)")),
		sm.From(transactionsTableName),
	}
	queryMods = append(queryMods, filterMods(filter)...)

	return bob.One(ctx, t.exec, psql.Select(queryMods...), scan.SingleColumnMapper[int64])
}

// DeleteByID reports whether a row was removed.
func (t *TransactionsTable) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteAll empties the table and returns how many rows it held.
func (t *TransactionsTable) DeleteAll(ctx context.Context) (int64, error) {
	res, err := bob.Exec(ctx, t.exec, psql.Delete(dm.From(transactionsTableName)))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *TransactionsTable) all(ctx context.Context, q bob.Query) ([]*Transaction, error) {
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func filterMods(filter *TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	if filter == nil {
		return nil
	}

	var whereMods []bob.Mod[*dialect.SelectQuery]
	if filter.Type != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.Category != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	if filter.FromDate != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.FromDate))))
	}
	if filter.ToDate != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*filter.ToDate))))
	}
	if filter.MaxCreationTime != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}
	return whereMods
}
