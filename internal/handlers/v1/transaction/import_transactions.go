package transaction

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/exchange"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// ImportTransactionsInput carries the uploaded file as the raw request body.
type ImportTransactionsInput struct {
	Format  string `query:"format" enum:"csv,txt" default:"csv" doc:"Format of the uploaded file"`
	RawBody []byte `contentType:"text/csv"`
}

type ImportTransactionsOutput struct {
	Body struct {
		Imported int `json:"imported" doc:"Number of transactions stored"`
	}
}

type transactionImporter interface {
	ImportTransactions(ctx context.Context, r io.Reader, format exchange.Format) (int, error)
}

// ImportTransactionsHandler handles POST /v1/transaction/import.
type ImportTransactionsHandler struct {
	TransactionService transactionImporter
}

func NewImportTransactionsHandler(svc transactionImporter) *ImportTransactionsHandler {
	return &ImportTransactionsHandler{TransactionService: svc}
}

func (h *ImportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "import-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/import",
		Summary:     "Import transactions",
		Description: "Stores every row of a csv or txt file. A file with any invalid row is rejected as a whole.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ImportTransactionsHandler) handle(ctx context.Context, input *ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	format, err := exchange.ParseFormat(input.Format)
	if err != nil || !format.Importable() {
		return nil, huma.NewError(http.StatusBadRequest, "format must be csv or txt", err)
	}

	imported, err := h.TransactionService.ImportTransactions(ctx, bytes.NewReader(input.RawBody), format)
	if err != nil {
		return nil, toHumaError(err, "failed to import transactions")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("imported", imported)
	}

	out := &ImportTransactionsOutput{}
	out.Body.Imported = imported
	return out, nil
}
