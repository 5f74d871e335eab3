package category

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

type CreateCategoryBody struct {
	Name            string `json:"name" minLength:"1" maxLength:"64" doc:"Category name, stored upper-cased"`
	TransactionType string `json:"transactionType" enum:"INCOME,EXPENSE" doc:"Money in or money out"`
}

type CreateCategoryOutput struct {
	Status int
	Body   Category
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, category service.Category) (*service.Category, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create a category",
		Description: "Adds a category to the catalog. Names are unique regardless of case.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	txType, err := analytics.ParseTransactionType(input.Body.TransactionType)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transactionType", err)
	}

	created, err := h.CategoryService.CreateCategory(ctx, service.Category{
		Name: input.Body.Name,
		Type: txType,
	})
	switch {
	case errors.Is(err, service.ErrCategoryExists):
		return nil, huma.NewError(http.StatusConflict, "category already exists", err)
	case errors.Is(err, service.ErrInvalidCategory):
		return nil, huma.NewError(http.StatusBadRequest, "invalid category", err)
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create category", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("category", created.Name)
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   fromService(*created),
	}, nil
}
