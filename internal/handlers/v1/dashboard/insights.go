package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// PeriodInput selects the dashboard period.
type PeriodInput struct {
	Period string `query:"period" default:"All" doc:"All, Week, Month, Quarter or Year. Unknown values mean All"`
}

type InsightsBody struct {
	Period          string   `json:"period"`
	Insights        []string `json:"insights" doc:"Observations about the period"`
	Recommendations []string `json:"recommendations" doc:"Suggestions, always present"`
}

type InsightsOutput struct {
	Body InsightsBody
}

type StatsBody struct {
	Period string `json:"period"`
	analytics.Totals
}

type StatsOutput struct {
	Body StatsBody
}

type insightsProvider interface {
	Insights(ctx context.Context, period analytics.Period) (*service.Insights, error)
	Stats(ctx context.Context, period analytics.Period) (analytics.Totals, error)
}

// InsightsHandler handles GET /v1/dashboard/insights and GET /v1/dashboard/stats.
type InsightsHandler struct {
	DashboardService insightsProvider
}

func NewInsightsHandler(svc insightsProvider) *InsightsHandler {
	return &InsightsHandler{DashboardService: svc}
}

func (h *InsightsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard-insights",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/insights",
		Summary:     "Dashboard insights",
		Tags:        []string{"Dashboard"},
	}, h.handleInsights)

	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard-stats",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/stats",
		Summary:     "Dashboard totals",
		Description: "Income, expense, balance and savings rate of the period.",
		Tags:        []string{"Dashboard"},
	}, h.handleStats)
}

func (h *InsightsHandler) handleInsights(ctx context.Context, input *PeriodInput) (*InsightsOutput, error) {
	period := analytics.ParsePeriod(input.Period)
	insights, err := h.DashboardService.Insights(ctx, period)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to derive insights", err)
	}

	body := InsightsBody{
		Period:          string(period),
		Insights:        insights.Insights,
		Recommendations: insights.Recommendations,
	}
	if body.Insights == nil {
		body.Insights = []string{}
	}
	if body.Recommendations == nil {
		body.Recommendations = []string{}
	}
	return &InsightsOutput{Body: body}, nil
}

func (h *InsightsHandler) handleStats(ctx context.Context, input *PeriodInput) (*StatsOutput, error) {
	period := analytics.ParsePeriod(input.Period)
	totals, err := h.DashboardService.Stats(ctx, period)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute totals", err)
	}
	return &StatsOutput{Body: StatsBody{Period: string(period), Totals: totals}}, nil
}
