package transaction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/exchange"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type ExportTransactionsInput struct {
	Format string `query:"format" enum:"csv,txt,pdf,xlsx" default:"csv" doc:"Download format"`
}

// ExportTransactionsOutput is a file download.
type ExportTransactionsOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type transactionExporter interface {
	ExportTransactions(ctx context.Context, w io.Writer, format exchange.Format) error
}

// ExportTransactionsHandler handles GET /v1/transaction/export.
type ExportTransactionsHandler struct {
	TransactionService transactionExporter
	now                func() time.Time
}

func NewExportTransactionsHandler(svc transactionExporter) *ExportTransactionsHandler {
	return &ExportTransactionsHandler{TransactionService: svc, now: time.Now}
}

func (h *ExportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/export",
		Summary:     "Export transactions",
		Description: "Downloads every transaction with monthly summaries as csv, txt, pdf or xlsx.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ExportTransactionsHandler) handle(ctx context.Context, input *ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	format, err := exchange.ParseFormat(input.Format)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid format", err)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("renderMs")
	}
	var buf bytes.Buffer
	err = h.TransactionService.ExportTransactions(ctx, &buf, format)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHumaError(err, "failed to export transactions")
	}

	if logData != nil {
		logData.AddData("exportBytes", buf.Len())
	}

	return &ExportTransactionsOutput{
		ContentType:        format.ContentType(),
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", format.Filename(h.now())),
		Body:               buf.Bytes(),
	}, nil
}
