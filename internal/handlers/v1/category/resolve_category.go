package category

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ResolveCategoryInput struct {
	Name string `path:"name" minLength:"1" doc:"Category name, any case"`
}

type ResolveCategoryOutput struct {
	Body struct {
		Name            string `json:"name"`
		TransactionType string `json:"transactionType" enum:"INCOME,EXPENSE"`
	}
}

type categoryResolver interface {
	ResolveType(ctx context.Context, name string) (analytics.TransactionType, error)
}

// ResolveCategoryHandler handles GET /v1/category/{name}, which the entry form
// uses to preselect the transaction type.
type ResolveCategoryHandler struct {
	CategoryService categoryResolver
}

func NewResolveCategoryHandler(svc categoryResolver) *ResolveCategoryHandler {
	return &ResolveCategoryHandler{CategoryService: svc}
}

func (h *ResolveCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolve-category",
		Method:      http.MethodGet,
		Path:        "/v1/category/{name}",
		Summary:     "Category type",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ResolveCategoryHandler) handle(ctx context.Context, input *ResolveCategoryInput) (*ResolveCategoryOutput, error) {
	txType, err := h.CategoryService.ResolveType(ctx, input.Name)
	if errors.Is(err, service.ErrUnknownCategory) {
		return nil, huma.NewError(http.StatusNotFound, "unknown category", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to resolve category", err)
	}

	out := &ResolveCategoryOutput{}
	out.Body.Name = strings.ToUpper(strings.TrimSpace(input.Name))
	out.Body.TransactionType = string(txType)
	return out, nil
}
