package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount          string `json:"amount" required:"true" doc:"Decimal amount greater than zero"`
	TransactionType string `json:"transactionType,omitempty" enum:"INCOME,EXPENSE" doc:"Taken from the category when omitted"`
	Category        string `json:"category" required:"true" minLength:"1" doc:"Category name"`
	TransactionDate string `json:"transactionDate,omitempty" doc:"YYYY-MM-DD or RFC3339 date, defaults to today"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for a created transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
	now                func() time.Time
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc, now: time.Now}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction. The type is looked up from the category when omitted.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
// A missing transactionDate is returned as the zero time.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.Transaction, error) {
	var tx service.Transaction

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return tx, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	tx.Amount = amount

	if input.Body.TransactionType != "" {
		if tx.Type, err = analytics.ParseTransactionType(input.Body.TransactionType); err != nil {
			return tx, huma.NewError(http.StatusBadRequest, "invalid transactionType", err)
		}
	}

	tx.Category = input.Body.Category

	if input.Body.TransactionDate != "" {
		date, ok := analytics.ParseDate(input.Body.TransactionDate)
		if !ok {
			return tx, huma.NewError(http.StatusBadRequest, "invalid transactionDate", errors.New("expected YYYY-MM-DD or RFC3339"))
		}
		tx.TransactionDate = date
	}

	return tx, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	tx, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	if tx.TransactionDate.IsZero() {
		tx.TransactionDate = analytics.Day(h.now())
	}

	id, err := h.TransactionService.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, toHumaError(err, "failed to create transaction")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponse{ID: id.String()}}, nil
}
