package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spendlens/internal/llm"
	"spendlens/internal/llm/llm_mocks"
	"spendlens/internal/models"
	"spendlens/internal/services"
	"spendlens/internal/services/service_mocks"
)

type InsightsServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	gateway        *llm_mocks.MockClient
	circuitBreaker *service_mocks.MockCircuitBreakerInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	service        services.InsightsServiceInterface
}

func TestInsightsServiceSuite(t *testing.T) {
	suite.Run(t, new(InsightsServiceTestSuite))
}

func (s *InsightsServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.gateway = llm_mocks.NewMockClient(s.ctrl)
	s.circuitBreaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.circuitBreaker.EXPECT().IsOpen().Return(false).AnyTimes()
	s.circuitBreaker.EXPECT().RecordSuccess().AnyTimes()
	s.circuitBreaker.EXPECT().RecordFailure().AnyTimes()
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = services.NewInsightsService(
		s.gateway, s.circuitBreaker, s.metrics, logger, 600)
}

func (s *InsightsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightsServiceTestSuite) summaryFixture() models.InsightsSummary {
	return models.InsightsSummary{
		PeriodStart:      "2025-01-05",
		PeriodEnd:        "2025-01-07",
		TransactionCount: 3,
		GrossSpend:       decimal.RequireFromString("55.00"),
		RefundsTotal:     decimal.RequireFromString("5.00"),
		NetSpend:         decimal.RequireFromString("50.00"),
	}
}

func (s *InsightsServiceTestSuite) TestGenerate_ValidResponse_ReturnsInsights() {
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 600).
		Return(`{"highlights":["Transport dominated spending"],"topSpendingCategory":"Transport","topMerchant":"SHELL OIL","concentrationNotes":[],"optimizationIdeas":[],"anomalies":[]}`, nil).
		Times(1)

	insights, err := s.service.Generate(s.ctx, s.summaryFixture())

	s.Require().NoError(err)
	s.Equal("Transport", insights.TopSpendingCategory)
	s.Equal("SHELL OIL", insights.TopMerchant)
	s.Len(insights.Highlights, 1)
}

func (s *InsightsServiceTestSuite) TestGenerate_FencedResponse_IsAccepted() {
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 600).
		Return("```json\n{\"highlights\":[\"ok\"],\"topSpendingCategory\":\"Dining\"}\n```", nil).
		Times(1)

	insights, err := s.service.Generate(s.ctx, s.summaryFixture())

	s.Require().NoError(err)
	s.Equal("Dining", insights.TopSpendingCategory)
}

func (s *InsightsServiceTestSuite) TestGenerate_InvalidJSON_ReturnsMalformedError() {
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 600).
		Return(`your spending was quite reasonable this month`, nil).
		Times(1)

	_, err := s.service.Generate(s.ctx, s.summaryFixture())

	s.Require().ErrorIs(err, services.ErrInsightsMalformed)
}

func (s *InsightsServiceTestSuite) TestGenerate_EmptyReport_ReturnsMalformedError() {
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 600).
		Return(`{}`, nil).
		Times(1)

	_, err := s.service.Generate(s.ctx, s.summaryFixture())

	s.Require().ErrorIs(err, services.ErrInsightsMalformed)
}

func (s *InsightsServiceTestSuite) TestGenerate_GatewayError_Propagates() {
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 600).
		Return("", llm.ErrTransport).
		Times(1)

	_, err := s.service.Generate(s.ctx, s.summaryFixture())

	s.Require().ErrorIs(err, llm.ErrTransport)
}
