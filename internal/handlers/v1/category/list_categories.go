package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	TransactionType string `query:"transactionType" enum:"INCOME,EXPENSE" doc:"Only categories of this type"`
	Position        int    `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit           int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 50"`
}

type ListCategoriesCursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

type ListCategoriesResponseBody struct {
	Categories []Category            `json:"categories" doc:"Page of categories ordered by name"`
	NextCursor *ListCategoriesCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

type categoryLister interface {
	ListCategories(ctx context.Context, txType *analytics.TransactionType, cursor *service.CategoryCursor) ([]service.Category, *service.CategoryCursor, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns a paginated list of categories, optionally for one transaction type.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func parseListCategoriesInput(input *ListCategoriesInput) (*analytics.TransactionType, *service.CategoryCursor, error) {
	var txType *analytics.TransactionType
	if input.TransactionType != "" {
		parsed, err := analytics.ParseTransactionType(input.TransactionType)
		if err != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid transactionType", err)
		}
		txType = &parsed
	}

	if input.Position == 0 && input.Limit == 0 {
		return txType, nil, nil
	}
	limit := input.Limit
	if limit == 0 {
		limit = 50
	}
	return txType, &service.CategoryCursor{Position: input.Position, Limit: limit}, nil
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	txType, cursor, err := parseListCategoriesInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCategoriesMs")
	}
	categories, next, err := h.CategoryService.ListCategories(ctx, txType, cursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	resp := ListCategoriesResponseBody{
		Categories: make([]Category, len(categories)),
	}
	for i, c := range categories {
		resp.Categories[i] = fromService(c)
	}
	if next != nil {
		resp.NextCursor = &ListCategoriesCursor{Position: next.Position, Limit: next.Limit}
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
