package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ListAllTransactionsOutput struct {
	Body struct {
		Transactions []Transaction `json:"transactions" doc:"Every transaction, oldest date first"`
	}
}

type allTransactionsLister interface {
	ListAllTransactions(ctx context.Context) ([]service.Transaction, error)
}

// ListAllTransactionsHandler handles GET /v1/transactions.
type ListAllTransactionsHandler struct {
	TransactionService allTransactionsLister
}

func NewListAllTransactionsHandler(svc allTransactionsLister) *ListAllTransactionsHandler {
	return &ListAllTransactionsHandler{TransactionService: svc}
}

func (h *ListAllTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-all-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List all transactions",
		Description: "Returns the complete transaction set without pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListAllTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ListAllTransactionsOutput, error) {
	transactions, err := h.TransactionService.ListAllTransactions(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	out := &ListAllTransactionsOutput{}
	out.Body.Transactions = make([]Transaction, len(transactions))
	for i, tx := range transactions {
		out.Body.Transactions[i] = fromService(tx)
	}
	return out, nil
}
