package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"spendlens/internal/dto"
	"spendlens/internal/models"
)

// FlowClassifierInterface tags a raw transaction with its flow type
// before line item normalization
type FlowClassifierInterface interface {
	// Classify is pure and total: unmatched descriptions fall through
	// to models.FlowOrdinary, never an error.
	Classify(description string, amount decimal.Decimal) string
}

// CategorizationServiceInterface reconciles model-proposed category
// assignments against the hard completeness and uniqueness rules
type CategorizationServiceInterface interface {
	// Categorize returns a complete id -> category map covering every
	// line item exactly once, with refund items force-routed to the
	// Refunds category.
	Categorize(ctx context.Context, items []models.LineItem) (map[int]string, error)
}

// AggregationServiceInterface rebuilds all totals from ground truth
type AggregationServiceInterface interface {
	Aggregate(items []models.LineItem, assignment map[int]string, flows models.FlowTotals) *models.AggregateSnapshot
	BuildInsightsSummary(items []models.LineItem, snapshot *models.AggregateSnapshot) models.InsightsSummary
	MoveMerchant(items []models.LineItem, assignment map[int]string, flows models.FlowTotals, merchant, fromCategory, toCategory string) (*models.AggregateSnapshot, map[int]string)
}

// InsightsServiceInterface produces the narrative insights block
type InsightsServiceInterface interface {
	Generate(ctx context.Context, summary models.InsightsSummary) (*models.Insights, error)
}

// ReviewServiceInterface reviews a product requirement via the model
type ReviewServiceInterface interface {
	// Review never fails: any provider or parsing failure collapses to
	// the fixed-shape score-1 report so callers have a single code path.
	Review(ctx context.Context, req dto.ReviewRequest) dto.ReviewReport
}

// AnalysisServiceInterface drives the full upload-to-insights pipeline
type AnalysisServiceInterface interface {
	Analyze(ctx context.Context, uploads []Upload, monthKey string) (*dto.AnalyzeResponse, error)
	RegenerateInsights(ctx context.Context, summary models.InsightsSummary) (*models.Insights, error)
}

// CircuitBreakerInterface guards the model provider
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	State() BreakerState
	Reset()
}

// MetricsRecorderInterface abstracts metrics collection
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
