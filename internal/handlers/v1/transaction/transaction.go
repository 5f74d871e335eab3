package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/exchange"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	Amount          string `json:"amount" doc:"Decimal amount"`
	TransactionType string `json:"transactionType" enum:"INCOME,EXPENSE" doc:"Money in or money out"`
	Category        string `json:"category" doc:"Category name"`
	TransactionDate string `json:"transactionDate" doc:"Calendar date, YYYY-MM-DD"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID.String(),
		Amount:          tx.Amount.StringFixed(2),
		TransactionType: string(tx.Type),
		Category:        tx.Category,
		TransactionDate: tx.TransactionDate.Format(dateLayout),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
}

// toHumaError maps service errors to the API status they stand for.
func toHumaError(err error, msg string) error {
	var parseErr *exchange.ParseError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, service.ErrInvalidTransaction),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrNothingToImport),
		errors.Is(err, service.ErrInvalidMonth),
		errors.Is(err, exchange.ErrUnsupportedFormat),
		errors.As(err, &parseErr):
		return huma.NewError(http.StatusBadRequest, msg, err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
