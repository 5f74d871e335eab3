package transaction

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/exchange"
)

type mockTransactionExporter struct {
	mock.Mock
}

func (m *mockTransactionExporter) ExportTransactions(ctx context.Context, w io.Writer, format exchange.Format) error {
	args := m.Called(ctx, w, format)
	return args.Error(0)
}

func newExportTestAPI(t *testing.T, svc transactionExporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	h := NewExportTransactionsHandler(svc)
	h.now = func() time.Time { return handlerNow }
	h.Register(api)
	return api
}

func writes(content string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_, _ = io.WriteString(args.Get(1).(io.Writer), content)
	}
}

func TestHTTP_ExportTransactions_DefaultCSV(t *testing.T) {
	csv := "id,amount,transactionType,category,date\n"

	mockSvc := new(mockTransactionExporter)
	mockSvc.On("ExportTransactions", mock.Anything, mock.Anything, exchange.FormatCSV).
		Run(writes(csv)).Return(nil)

	resp := newExportTestAPI(t, mockSvc).Get("/v1/transaction/export")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="transactions-20240515.csv"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, csv, resp.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ExportTransactions_Formats(t *testing.T) {
	for _, format := range []exchange.Format{exchange.FormatText, exchange.FormatPDF, exchange.FormatXLSX} {
		t.Run(string(format), func(t *testing.T) {
			mockSvc := new(mockTransactionExporter)
			mockSvc.On("ExportTransactions", mock.Anything, mock.Anything, format).
				Run(writes("payload")).Return(nil)

			resp := newExportTestAPI(t, mockSvc).Get("/v1/transaction/export?format=" + string(format))

			assert.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, format.ContentType(), resp.Header().Get("Content-Type"))
			assert.Contains(t, resp.Header().Get("Content-Disposition"), format.Filename(handlerNow))
			assert.Equal(t, "payload", resp.Body.String())
		})
	}
}

func TestHTTP_ExportTransactions_UnknownFormat(t *testing.T) {
	mockSvc := new(mockTransactionExporter)

	resp := newExportTestAPI(t, mockSvc).Get("/v1/transaction/export?format=docx")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ExportTransactions")
}

func TestHTTP_ExportTransactions_Error(t *testing.T) {
	mockSvc := new(mockTransactionExporter)
	mockSvc.On("ExportTransactions", mock.Anything, mock.Anything, exchange.FormatCSV).
		Return(errors.New("database unavailable"))

	resp := newExportTestAPI(t, mockSvc).Get("/v1/transaction/export")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
