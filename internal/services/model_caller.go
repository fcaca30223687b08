package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"spendlens/internal/llm"
)

// modelCaller wraps the provider gateway with the circuit breaker and
// call metrics. All model-facing services route their calls through it.
type modelCaller struct {
	gateway llm.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func (mc *modelCaller) call(ctx context.Context, operation, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if mc.breaker.IsOpen() {
		mc.metrics.IncrementCounter("llm.call.failed", map[string]string{
			"operation": operation,
			"reason":    "circuit_open",
		})
		return "", ErrCircuitBreakerOpen
	}

	start := time.Now()
	text, err := mc.gateway.Complete(ctx, systemPrompt, userPrompt, maxTokens)
	mc.metrics.RecordProcessingTime("llm.call."+operation, time.Since(start))

	if err != nil {
		mc.breaker.RecordFailure()
		mc.metrics.IncrementCounter("llm.call.failed", map[string]string{
			"operation": operation,
			"reason":    failureReason(err),
		})
		mc.logger.Error("model call failed",
			"operation", operation,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return "", err
	}

	mc.breaker.RecordSuccess()
	mc.metrics.IncrementCounter("llm.call.success", map[string]string{
		"operation": operation,
	})
	return text, nil
}

func failureReason(err error) string {
	var statusErr *llm.StatusError
	switch {
	case errors.As(err, &statusErr):
		return "status"
	case errors.Is(err, llm.ErrTransport):
		return "transport"
	case errors.Is(err, llm.ErrUnexpectedResponse):
		return "unexpected"
	default:
		return "error"
	}
}
