package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	ClearTransactions(ctx context.Context) (int64, error)
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id} and
// DELETE /v1/transactions.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// ClearTransactionsOutput reports how many transactions were removed.
type ClearTransactionsOutput struct {
	Body struct {
		Deleted int64 `json:"deleted" doc:"Number of transactions removed"`
	}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{id}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)

	huma.Register(api, huma.Operation{
		OperationID: "clear-transactions",
		Method:      http.MethodDelete,
		Path:        "/v1/transactions",
		Summary:     "Clear transactions",
		Description: "Removes every transaction.",
		Tags:        []string{"Transactions"},
	}, h.handleClear)
}

func (h *DeleteTransactionHandler) handleDelete(ctx context.Context, input *TransactionIDInput) (*struct{}, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	if err := h.TransactionService.DeleteTransaction(ctx, id); err != nil {
		return nil, toHumaError(err, "failed to delete transaction")
	}
	return nil, nil
}

func (h *DeleteTransactionHandler) handleClear(ctx context.Context, _ *struct{}) (*ClearTransactionsOutput, error) {
	deleted, err := h.TransactionService.ClearTransactions(ctx)
	if err != nil {
		return nil, toHumaError(err, "failed to clear transactions")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deleted", deleted)
	}

	out := &ClearTransactionsOutput{}
	out.Body.Deleted = deleted
	return out, nil
}
