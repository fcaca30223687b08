package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	llmCalls            *prometheus.CounterVec
	llmCallDuration     *prometheus.HistogramVec
	repairAttempts      *prometheus.CounterVec
	batchesProcessed    prometheus.Counter
	reconcileFailures   *prometheus.CounterVec
	analysisDuration    prometheus.Histogram
	lineItemsProcessed  prometheus.Histogram
	reviewsTotal        *prometheus.CounterVec
	circuitBreakerState prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		llmCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_calls_total",
				Help: "Total number of model calls by operation and status",
			},
			[]string{"operation", "status"},
		),
		llmCallDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "llm_call_duration_milliseconds",
				Help:    "Model call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
			[]string{"operation"},
		),
		repairAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_repair_attempts_total",
				Help: "Total number of repair calls issued after an invalid model response",
			},
			[]string{"operation"},
		),
		batchesProcessed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "categorization_batches_total",
				Help: "Total number of categorization batches sent to the model",
			},
		),
		reconcileFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categorization_reconcile_failures_total",
				Help: "Total number of fatal reconciliation failures by reason",
			},
			[]string{"reason"},
		),
		analysisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analysis_duration_milliseconds",
				Help:    "Full upload analysis duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(100, 2, 10),
			},
		),
		lineItemsProcessed: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analysis_line_items",
				Help:    "Line items per analysis after normalization",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reviewsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reviews_total",
				Help: "Total number of story reviews by outcome",
			},
			[]string{"outcome"},
		),
		circuitBreakerState: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case "llm.call.success":
		m.llmCalls.WithLabelValues(operation, "success").Inc()
	case "llm.call.failed":
		m.llmCalls.WithLabelValues(operation, "failed_"+tags["reason"]).Inc()
	case "llm.repair_attempt":
		m.repairAttempts.WithLabelValues(operation).Inc()
	case "categorization.batch":
		m.batchesProcessed.Inc()
	case "categorization.reconcile_failure":
		m.reconcileFailures.WithLabelValues(tags["reason"]).Inc()
	case "review.completed":
		if outcome := tags["outcome"]; outcome != "" {
			m.reviewsTotal.WithLabelValues(outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "llm.call.categorize", "llm.call.insights", "llm.call.review":
		m.llmCallDuration.WithLabelValues(name[len("llm.call."):]).Observe(float64(duration.Milliseconds()))
	case "analysis.duration":
		m.analysisDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		m.circuitBreakerState.Set(value)
	case "analysis.line_items":
		m.lineItemsProcessed.Observe(value)
	}
}
