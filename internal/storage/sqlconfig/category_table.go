package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const categoriesTableName = "categories"

var categoryColumns = []any{"name", "transaction_type", "created_at"}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// Ensure CategoriesTable implements ICategoryTable at compile time.
var _ ICategoryTable = (*CategoriesTable)(nil)

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByName retrieves a category by its exact name. Missing rows return sql.ErrNoRows.
func (t *CategoriesTable) FindByName(ctx context.Context, name string) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(categoriesTableName),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new category.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) error {
	q := psql.Insert(
		im.Into(categoriesTableName, "name", "transaction_type"),
		im.Values(psql.Arg(create.Name, create.Type)),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns categories matching the filter ordered by name. Nil filter returns all.
func (t *CategoriesTable) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From(categoriesTableName),
	}
	if filter != nil {
		if filter.Type != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_type").EQ(psql.Arg(*filter.Type))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("name")).Asc())

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
