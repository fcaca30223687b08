package services_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"spendlens/internal/services"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	breaker services.CircuitBreakerInterface
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) newBreaker(config services.CircuitBreakerConfig) services.CircuitBreakerInterface {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewCircuitBreaker(config, logger, nil)
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.breaker = s.newBreaker(services.DefaultCircuitBreakerConfig())
}

func (s *CircuitBreakerTestSuite) TestStartsClosed() {
	s.False(s.breaker.IsOpen())
	s.Equal(services.BreakerClosed, s.breaker.State())
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	for i := 0; i < 5; i++ {
		s.breaker.RecordFailure()
	}

	s.True(s.breaker.IsOpen())
	s.Equal(services.BreakerOpen, s.breaker.State())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	for i := 0; i < 4; i++ {
		s.breaker.RecordFailure()
	}
	s.breaker.RecordSuccess()
	s.breaker.RecordFailure()

	s.False(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	breaker := s.newBreaker(services.CircuitBreakerConfig{
		MaxFailures:     1,
		ResetTimeout:    10 * time.Millisecond,
		HalfOpenMaxSucc: 2,
	})

	breaker.RecordFailure()
	s.True(breaker.IsOpen())

	time.Sleep(20 * time.Millisecond)
	s.False(breaker.IsOpen())
	s.Equal(services.BreakerHalfOpen, breaker.State())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenClosesAfterSuccesses() {
	breaker := s.newBreaker(services.CircuitBreakerConfig{
		MaxFailures:     1,
		ResetTimeout:    10 * time.Millisecond,
		HalfOpenMaxSucc: 2,
	})

	breaker.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	s.False(breaker.IsOpen())

	breaker.RecordSuccess()
	breaker.RecordSuccess()

	s.Equal(services.BreakerClosed, breaker.State())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	breaker := s.newBreaker(services.CircuitBreakerConfig{
		MaxFailures:     1,
		ResetTimeout:    10 * time.Millisecond,
		HalfOpenMaxSucc: 2,
	})

	breaker.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	s.False(breaker.IsOpen())

	breaker.RecordFailure()

	s.True(breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestResetClosesBreaker() {
	for i := 0; i < 5; i++ {
		s.breaker.RecordFailure()
	}
	s.True(s.breaker.IsOpen())

	s.breaker.Reset()

	s.False(s.breaker.IsOpen())
	s.Equal(services.BreakerClosed, s.breaker.State())
}
