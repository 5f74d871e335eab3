package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// ChartInput selects a chart, its period and the visible series.
type ChartInput struct {
	Kind    string `query:"kind" doc:"income-vs-expense, category-analysis, balance-distribution or trend-line"`
	Period  string `query:"period" default:"All" doc:"All, Week, Month, Quarter or Year. Unknown values mean All"`
	Income  bool   `query:"income" default:"true" doc:"Show the income series"`
	Expense bool   `query:"expense" default:"true" doc:"Show the expense series"`
}

// ChartBody is a tagged union: Kind says which of the payload fields is set.
type ChartBody struct {
	Kind    string `json:"kind"`
	Period  string `json:"period"`
	HasData bool   `json:"hasData" doc:"False when the chart should show a placeholder"`

	Series     *analytics.TimeSeries        `json:"series,omitempty" doc:"income-vs-expense and trend-line"`
	Points     []analytics.AggregatedPoint  `json:"points,omitempty" doc:"The series zipped per bucket"`
	Categories *analytics.CategoryBreakdown `json:"categories,omitempty" doc:"category-analysis"`
	Balance    []analytics.BalancePoint     `json:"balance,omitempty" doc:"balance-distribution"`
}

type ChartOutput struct {
	Body ChartBody
}

type chartBuilder interface {
	Chart(ctx context.Context, kind analytics.ChartKind, period analytics.Period, vis analytics.Visibility) (analytics.Chart, error)
}

// ChartHandler handles GET /v1/dashboard/chart.
type ChartHandler struct {
	DashboardService chartBuilder
}

func NewChartHandler(svc chartBuilder) *ChartHandler {
	return &ChartHandler{DashboardService: svc}
}

func (h *ChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard-chart",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/chart",
		Summary:     "Dashboard chart",
		Description: "Computes one chart over the transactions of the period.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *ChartHandler) handle(ctx context.Context, input *ChartInput) (*ChartOutput, error) {
	kind, err := analytics.ParseChartKind(input.Kind)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, fmt.Sprintf("unknown chart kind %q", input.Kind), err)
	}
	period := analytics.ParsePeriod(input.Period)
	vis := analytics.Visibility{ShowIncome: input.Income, ShowExpense: input.Expense}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("chartKind", string(kind))
		stopTimer = logData.AddTiming("chartMs")
	}
	chart, err := h.DashboardService.Chart(ctx, kind, period, vis)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build chart", err)
	}

	return &ChartOutput{Body: chartBody(chart, period)}, nil
}

func chartBody(chart analytics.Chart, period analytics.Period) ChartBody {
	body := ChartBody{
		Kind:    string(chart.Kind()),
		Period:  string(period),
		HasData: chart.HasData(),
	}

	switch c := chart.(type) {
	case analytics.TimeSeriesChart:
		body.Series = &c.Series
		body.Points = c.Series.Points()
	case analytics.TrendChart:
		body.Series = &c.Series
		body.Points = c.Series.Points()
	case analytics.CategoryChart:
		body.Categories = &c.Categories
	case analytics.BalanceChart:
		body.Balance = c.Points
	}
	return body
}
