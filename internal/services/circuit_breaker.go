package services

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker guards the model provider. After MaxFailures
// consecutive failures the breaker opens and calls fail fast until
// ResetTimeout elapses, then a half-open probe window decides whether
// to close again.
type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	logger            *slog.Logger
	metrics           MetricsRecorderInterface
}

func NewCircuitBreaker(config CircuitBreakerConfig, logger *slog.Logger, metrics MetricsRecorderInterface) CircuitBreakerInterface {
	return &CircuitBreaker{
		config:  config,
		state:   BreakerClosed,
		logger:  logger,
		metrics: metrics,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == BreakerOpen && cb.shouldTransitionToHalfOpen() {
		cb.setState(BreakerHalfOpen)
		cb.halfOpenSuccesses = 0
		return false
	}

	return cb.state == BreakerOpen
}

func (cb *CircuitBreaker) shouldTransitionToHalfOpen() bool {
	return time.Since(cb.lastFailureTime) > cb.config.ResetTimeout
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == BreakerHalfOpen {
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.setState(BreakerClosed)
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	} else if cb.state == BreakerClosed {
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()

	if cb.state == BreakerHalfOpen {
		cb.setState(BreakerOpen)
		cb.halfOpenSuccesses = 0
	} else if cb.state == BreakerClosed {
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.setState(BreakerOpen)
			cb.halfOpenSuccesses = 0
		}
	}
}

// setState must be called with cb.mu held.
func (cb *CircuitBreaker) setState(next BreakerState) {
	if cb.state == next {
		return
	}
	cb.logger.Warn("circuit breaker state change",
		"from", cb.state.String(),
		"to", next.String())
	cb.state = next
	if cb.metrics != nil {
		cb.metrics.RecordGauge("circuit_breaker.state", float64(next), nil)
	}
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.setState(BreakerClosed)
	cb.failures = 0
	cb.halfOpenSuccesses = 0
}
