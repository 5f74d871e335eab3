package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, category service.Category) (*service.Category, error) {
	args := m.Called(ctx, category)
	created, _ := args.Get(0).(*service.Category)
	return created, args.Error(1)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, txType *analytics.TransactionType, cursor *service.CategoryCursor) ([]service.Category, *service.CategoryCursor, error) {
	args := m.Called(ctx, txType, cursor)
	categories, _ := args.Get(0).([]service.Category)
	next, _ := args.Get(1).(*service.CategoryCursor)
	return categories, next, args.Error(2)
}

func newTestAPI(t *testing.T, svc *mockCategoryService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateCategoryHandler(svc).Register(api)
	NewListCategoriesHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateCategory_Success(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	mockSvc := new(mockCategoryService)
	mockSvc.On("CreateCategory", mock.Anything, service.Category{Name: "Pets", Type: analytics.Expense}).
		Return(&service.Category{Name: "PETS", Type: analytics.Expense, CreatedAt: createdAt}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/category", CreateCategoryBody{
		Name:            "Pets",
		TransactionType: "EXPENSE",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Category{Name: "PETS", TransactionType: "EXPENSE", CreatedAt: "2024-03-01T08:00:00Z"}, body)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCategory_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"exists", fmt.Errorf("%w: FOOD", service.ErrCategoryExists), http.StatusConflict},
		{"invalid", fmt.Errorf("%w: name is required", service.ErrInvalidCategory), http.StatusBadRequest},
		{"storage", errors.New("database unavailable"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(mockCategoryService)
			mockSvc.On("CreateCategory", mock.Anything, mock.Anything).Return(nil, tt.err)

			resp := newTestAPI(t, mockSvc).Post("/v1/category", CreateCategoryBody{
				Name:            "food",
				TransactionType: "EXPENSE",
			})

			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestHTTP_CreateCategory_SchemaViolations(t *testing.T) {
	for name, body := range map[string]any{
		"missing type": map[string]any{"name": "PETS"},
		"empty name":   CreateCategoryBody{Name: "", TransactionType: "INCOME"},
		"bad type":     CreateCategoryBody{Name: "PETS", TransactionType: "TRANSFER"},
	} {
		t.Run(name, func(t *testing.T) {
			mockSvc := new(mockCategoryService)

			resp := newTestAPI(t, mockSvc).Post("/v1/category", body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			mockSvc.AssertNotCalled(t, "CreateCategory")
		})
	}
}
