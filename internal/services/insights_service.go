package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"spendlens/internal/llm"
	"spendlens/internal/models"
)

var ErrInsightsMalformed = errors.New("insights response is malformed")

// InsightsService turns a precomputed aggregate summary into narrative
// insights. The model only ever sees the summary, never raw rows, and
// its response is decoded strictly so garbled output surfaces as an
// error instead of an empty report.
type InsightsService struct {
	caller    *modelCaller
	logger    *slog.Logger
	maxTokens int
}

func NewInsightsService(
	gateway llm.Client,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	maxTokens int,
) InsightsServiceInterface {
	return &InsightsService{
		caller: &modelCaller{
			gateway: gateway,
			breaker: breaker,
			metrics: metrics,
			logger:  logger,
		},
		logger:    logger,
		maxTokens: maxTokens,
	}
}

func (s *InsightsService) Generate(ctx context.Context, summary models.InsightsSummary) (*models.Insights, error) {
	userPrompt, err := buildInsightsPrompt(summary)
	if err != nil {
		return nil, err
	}

	raw, err := s.caller.call(ctx, "insights", insightsSystemPrompt, userPrompt, s.maxTokens)
	if err != nil {
		return nil, err
	}

	var insights models.Insights
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &insights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsightsMalformed, err)
	}
	if insights.TopSpendingCategory == "" && len(insights.Highlights) == 0 {
		return nil, fmt.Errorf("%w: empty report", ErrInsightsMalformed)
	}
	return &insights, nil
}
