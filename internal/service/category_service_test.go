package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func newCategoryTestService(t *testing.T) (*CategoryService, *testDeps) {
	t.Helper()
	store, deps := newTestDeps(t)
	return NewCategoryService(store, deps.operator), deps
}

func makeStorageCategories(names ...string) []*sqlconfig.Category {
	rows := make([]*sqlconfig.Category, len(names))
	for i, name := range names {
		rows[i] = &sqlconfig.Category{
			Name:      name,
			Type:      sqlconfig.TransactionTypeExpense,
			CreatedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		}
	}
	return rows
}

// -- CreateCategory tests --

func TestCreateCategory_Success(t *testing.T) {
	svc, deps := newCategoryTestService(t)

	deps.categories.EXPECT().FindByName(mock.Anything, "GIFTS").Return(nil, sql.ErrNoRows)
	deps.categories.EXPECT().Insert(mock.Anything, &sqlconfig.CategoryCreate{
		Name: "GIFTS",
		Type: sqlconfig.TransactionTypeIncome,
	}).Return(nil)

	category, err := svc.CreateCategory(context.Background(), Category{Name: " gifts", Type: analytics.Income})
	require.NoError(t, err)
	assert.Equal(t, "GIFTS", category.Name)
}

func TestCreateCategory_Exists(t *testing.T) {
	svc, deps := newCategoryTestService(t)

	deps.categories.EXPECT().FindByName(mock.Anything, "FOOD").Return(makeStorageCategories("FOOD")[0], nil)

	category, err := svc.CreateCategory(context.Background(), Category{Name: "food", Type: analytics.Expense})
	assert.ErrorIs(t, err, ErrCategoryExists)
	assert.Nil(t, category)
}

func TestCreateCategory_Invalid(t *testing.T) {
	svc, deps := newCategoryTestService(t)

	_, err := svc.CreateCategory(context.Background(), Category{Name: "", Type: analytics.Expense})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.CreateCategory(context.Background(), Category{Name: "GIFTS"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	assert.Zero(t, deps.operator.calls)
}

// -- ResolveType tests --

func TestResolveType(t *testing.T) {
	svc, deps := newCategoryTestService(t)

	deps.categories.EXPECT().FindByName(mock.Anything, "RENT").Return(makeStorageCategories("RENT")[0], nil)
	deps.categories.EXPECT().FindByName(mock.Anything, "BOATS").Return(nil, sql.ErrNoRows)

	txType, err := svc.ResolveType(context.Background(), "rent")
	assert.NoError(t, err)
	assert.Equal(t, analytics.Expense, txType)

	_, err = svc.ResolveType(context.Background(), "boats")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

// -- ListCategories tests --

func TestListCategories_NoResults(t *testing.T) {
	svc, deps := newCategoryTestService(t)

	deps.categories.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Category{}, nil)

	categories, next, err := svc.ListCategories(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, categories)
	assert.Nil(t, next)
}

func TestListCategories_SinglePage(t *testing.T) {
	svc, deps := newCategoryTestService(t)

	rows := makeStorageCategories("FOOD", "RENT")
	deps.categories.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.CategoryFilter) bool {
		return f.Limit == defaultCategoryLimit && f.Offset == 0 && f.Type == nil
	})).Return(rows, nil)

	categories, next, err := svc.ListCategories(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, categories, 2)
	assert.Equal(t, "FOOD", categories[0].Name)
	assert.Equal(t, analytics.Expense, categories[0].Type)
	assert.Equal(t, rows[0].CreatedAt, categories[0].CreatedAt)
}

func TestListCategories_WithCursorAndType(t *testing.T) {
	svc, deps := newCategoryTestService(t)

	deps.categories.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.CategoryFilter) bool {
		return f.Limit == 2 && f.Offset == 4 && f.Type != nil && *f.Type == sqlconfig.TransactionTypeExpense
	})).Return(makeStorageCategories("FOOD", "OTHER", "RENT"), nil)

	expense := analytics.Expense
	categories, next, err := svc.ListCategories(context.Background(), &expense, &CategoryCursor{Position: 4, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	require.NotNil(t, next)
	assert.Equal(t, 6, next.Position)
	assert.Equal(t, 2, next.Limit)
}

func TestListCategories_StorageError(t *testing.T) {
	svc, deps := newCategoryTestService(t)

	deps.categories.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	categories, next, err := svc.ListCategories(context.Background(), nil, nil)
	assert.EqualError(t, err, "database unavailable")
	assert.Nil(t, categories)
	assert.Nil(t, next)
}
