package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const defaultCategoryLimit = 50

// CategoryService handles the category catalog.
type CategoryService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, op actionProcessor) *CategoryService {
	return &CategoryService{storage: store, operator: op}
}

// CreateCategory adds a category. Names are stored upper-cased.
func (s *CategoryService) CreateCategory(ctx context.Context, category Category) (*Category, error) {
	category.Name = normalizeCategory(category.Name)
	if category.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	if category.Type != analytics.Income && category.Type != analytics.Expense {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, analytics.ErrUnknownTransactionType)
	}

	err := s.operator.Process(ctx, &actions.CreateCategory{
		Name: category.Name,
		Type: transactionTypeToStorage(category.Type),
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ResolveType returns the transaction type a category belongs to.
func (s *CategoryService) ResolveType(ctx context.Context, name string) (analytics.TransactionType, error) {
	row, err := s.storage.Categories.FindByName(ctx, normalizeCategory(name))
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}
	if err != nil {
		return "", err
	}
	return transactionTypeFromStorage(row.Type), nil
}

// ListCategories returns a page of categories ordered by name, optionally
// limited to one transaction type.
func (s *CategoryService) ListCategories(ctx context.Context, txType *analytics.TransactionType, cursor *CategoryCursor) ([]Category, *CategoryCursor, error) {
	limit := defaultCategoryLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	filter := &sqlconfig.CategoryFilter{
		Limit:  limit,
		Offset: offset,
	}
	if txType != nil {
		t := transactionTypeToStorage(*txType)
		filter.Type = &t
	}

	var nextCursor *CategoryCursor
	categories, err := s.storage.Categories.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(categories) == 0 {
		return nil, nil, nil
	}

	if len(categories) > limit {
		categories = categories[:limit]
		nextCursor = &CategoryCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedCategories := make([]Category, len(categories))
	for i, category := range categories {
		convertedCategories[i] = categoryFromStorage(category)
	}

	return convertedCategories, nextCursor, nil
}
