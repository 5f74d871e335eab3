package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

// MonthSummary is the API model of one month's totals.
type MonthSummary struct {
	Month   string `json:"month" doc:"YYYY-MM"`
	Income  string `json:"income" doc:"Decimal income total"`
	Expense string `json:"expense" doc:"Decimal expense total"`
	Net     string `json:"net" doc:"Income minus expense"`
	Text    string `json:"text" doc:"Plain-text rendering of the summary"`
}

func fromMonthSummary(s analytics.MonthSummary) MonthSummary {
	return MonthSummary{
		Month:   s.Key(),
		Income:  s.Income.StringFixed(2),
		Expense: s.Expense.StringFixed(2),
		Net:     s.Net.StringFixed(2),
		Text:    s.Text(),
	}
}

type MonthSummaryInput struct {
	Year  int `path:"year" minimum:"1" maximum:"9999" doc:"Calendar year"`
	Month int `path:"month" minimum:"1" maximum:"12" doc:"Month number, 1-12"`
}

type MonthSummaryOutput struct {
	Body MonthSummary
}

type MonthlySummariesOutput struct {
	Body struct {
		Summaries []MonthSummary `json:"summaries" doc:"One entry per month with transactions, oldest first"`
	}
}

type summaryProvider interface {
	MonthSummary(ctx context.Context, year int, month time.Month) (analytics.MonthSummary, error)
	AllMonths(ctx context.Context) ([]analytics.MonthSummary, error)
}

// SummaryHandler handles GET /v1/summary and GET /v1/summary/{year}/{month}.
type SummaryHandler struct {
	SummaryService summaryProvider
}

func NewSummaryHandler(svc summaryProvider) *SummaryHandler {
	return &SummaryHandler{SummaryService: svc}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-monthly-summaries",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Monthly summaries",
		Tags:        []string{"Summaries"},
	}, h.handleAll)

	huma.Register(api, huma.Operation{
		OperationID: "get-month-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/{year}/{month}",
		Summary:     "Month summary",
		Tags:        []string{"Summaries"},
	}, h.handleMonth)
}

func (h *SummaryHandler) handleAll(ctx context.Context, _ *struct{}) (*MonthlySummariesOutput, error) {
	summaries, err := h.SummaryService.AllMonths(ctx)
	if err != nil {
		return nil, toHumaError(err, "failed to compute summaries")
	}

	out := &MonthlySummariesOutput{}
	out.Body.Summaries = make([]MonthSummary, len(summaries))
	for i, s := range summaries {
		out.Body.Summaries[i] = fromMonthSummary(s)
	}
	return out, nil
}

func (h *SummaryHandler) handleMonth(ctx context.Context, input *MonthSummaryInput) (*MonthSummaryOutput, error) {
	summary, err := h.SummaryService.MonthSummary(ctx, input.Year, time.Month(input.Month))
	if err != nil {
		return nil, toHumaError(err, "failed to compute summary")
	}
	return &MonthSummaryOutput{Body: fromMonthSummary(summary)}, nil
}
