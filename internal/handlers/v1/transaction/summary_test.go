package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

type mockSummaryProvider struct {
	mock.Mock
}

func (m *mockSummaryProvider) MonthSummary(ctx context.Context, year int, month time.Month) (analytics.MonthSummary, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).(analytics.MonthSummary), args.Error(1)
}

func (m *mockSummaryProvider) AllMonths(ctx context.Context) ([]analytics.MonthSummary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]analytics.MonthSummary)
	return summaries, args.Error(1)
}

func newSummaryTestAPI(t *testing.T, svc summaryProvider) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSummaryHandler(svc).Register(api)
	return api
}

func january() analytics.MonthSummary {
	return analytics.MonthSummary{
		Year:    2024,
		Month:   time.January,
		Income:  decimal.RequireFromString("100"),
		Expense: decimal.RequireFromString("40"),
		Net:     decimal.RequireFromString("60"),
	}
}

func TestHTTP_MonthSummary(t *testing.T) {
	mockSvc := new(mockSummaryProvider)
	mockSvc.On("MonthSummary", mock.Anything, 2024, time.January).Return(january(), nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/summary/2024/1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, MonthSummary{
		Month:   "2024-01",
		Income:  "100.00",
		Expense: "40.00",
		Net:     "60.00",
		Text:    "Summary for 2024-01:\nIncome: ₹100.00\nExpense: ₹40.00\nNet: ₹60.00",
	}, body)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthSummary_MonthOutOfRange(t *testing.T) {
	mockSvc := new(mockSummaryProvider)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/summary/2024/13")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "MonthSummary")
}

func TestHTTP_AllMonths(t *testing.T) {
	december := analytics.MonthSummary{
		Year:    2023,
		Month:   time.December,
		Expense: decimal.RequireFromString("500"),
		Net:     decimal.RequireFromString("-500"),
	}

	mockSvc := new(mockSummaryProvider)
	mockSvc.On("AllMonths", mock.Anything).Return([]analytics.MonthSummary{december, january()}, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthlySummariesOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	require.Len(t, body.Body.Summaries, 2)
	assert.Equal(t, "2023-12", body.Body.Summaries[0].Month)
	assert.Equal(t, "-500.00", body.Body.Summaries[0].Net)
	assert.Equal(t, "2024-01", body.Body.Summaries[1].Month)
}

func TestHTTP_AllMonths_Error(t *testing.T) {
	mockSvc := new(mockSummaryProvider)
	mockSvc.On("AllMonths", mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/summary")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
