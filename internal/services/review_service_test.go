package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"spendlens/internal/dto"
	"spendlens/internal/llm"
	"spendlens/internal/llm/llm_mocks"
	"spendlens/internal/services"
	"spendlens/internal/services/service_mocks"
)

const validReviewJSON = `{
  "rating": {"score_1_to_5": 4, "label": "Good", "one_line_summary": "Solid story with minor gaps.", "critical": 0, "major": 1, "minor": 2},
  "data": {
    "missing_acceptance_criteria": [{"severity": "major", "issue": "No error path", "suggestion": "Define failure behavior"}],
    "ambiguous_language": [],
    "edge_cases": [],
    "non_testable_or_weak_criteria": [],
    "missing_context_questions": []
  },
  "rewrite": {"user_story": "As a user...", "acceptance_criteria": ["Given..."]},
  "jira_comment_md": "## Review"
}`

type ReviewServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	gateway        *llm_mocks.MockClient
	circuitBreaker *service_mocks.MockCircuitBreakerInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	service        services.ReviewServiceInterface
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}

func (s *ReviewServiceTestSuite) SetupTest() {
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
	s.service = services.NewReviewService(
		s.gateway, s.circuitBreaker, s.metrics, logger, 1400)
}

func (s *ReviewServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func reviewRequest() dto.ReviewRequest {
	return dto.ReviewRequest{
		Context:            "Checkout flow",
		Story:              "As a shopper I want to save my cart",
		AcceptanceCriteria: "Cart persists across sessions",
	}
}

func (s *ReviewServiceTestSuite) TestReview_ValidFirstResponse_ReturnsReport() {
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 1400).
		Return(validReviewJSON, nil).
		Times(1)

	report := s.service.Review(s.ctx, reviewRequest())

	s.Equal(4, report.Rating.Score)
	s.Equal("Good", report.Rating.Label)
	s.Nil(report.Error)
	s.Len(report.Data.MissingAcceptanceCriteria, 1)
}

func (s *ReviewServiceTestSuite) TestReview_SecondAttemptValid_ReturnsReport() {
	first := s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 1400).
		Return("Sure! Here is my review of the story...", nil)
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 1400).
		Return(validReviewJSON, nil).
		After(first)

	report := s.service.Review(s.ctx, reviewRequest())

	s.Equal(4, report.Rating.Score)
	s.Nil(report.Error)
}

func (s *ReviewServiceTestSuite) TestReview_ThirdAttemptFixesJSON_ReturnsReport() {
	first := s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 1400).
		Return(`{"rating": {"score_1_to_5": 4,`, nil)
	second := s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 1400).
		Return(`{"rating": {"score_1_to_5": 4, "label"`, nil).
		After(first)
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 1400).
		Return(validReviewJSON, nil).
		After(second)

	report := s.service.Review(s.ctx, reviewRequest())

	s.Equal(4, report.Rating.Score)
	s.Nil(report.Error)
}

func (s *ReviewServiceTestSuite) TestReview_AllAttemptsFail_ReturnsFallbackShape() {
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 1400).
		Return("still not json", nil).
		Times(3)

	report := s.service.Review(s.ctx, reviewRequest())

	s.Equal(1, report.Rating.Score)
	s.Equal("Not Passed", report.Rating.Label)
	s.Require().NotNil(report.Error)
	s.NotEmpty(report.Error.Message)
	s.NotEmpty(report.Error.Hint)
	// Fallback keeps the success shape: arrays present, not null.
	s.NotNil(report.Data.MissingAcceptanceCriteria)
	s.NotNil(report.Data.MissingContextQuestions)
	s.NotNil(report.Rewrite.AcceptanceCriteria)
}

func (s *ReviewServiceTestSuite) TestReview_GatewayError_ReturnsFallback() {
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 1400).
		Return("", llm.ErrTransport).
		Times(1)

	report := s.service.Review(s.ctx, reviewRequest())

	s.Equal(1, report.Rating.Score)
	s.Require().NotNil(report.Error)
}

func (s *ReviewServiceTestSuite) TestReview_OutOfRangeScore_TreatedAsInvalid() {
	s.gateway.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), 1400).
		Return(`{"rating": {"score_1_to_5": 11}}`, nil).
		Times(3)

	report := s.service.Review(s.ctx, reviewRequest())

	s.Equal(1, report.Rating.Score)
	s.Require().NotNil(report.Error)
}

func (s *ReviewServiceTestSuite) TestReview_BlankStory_NoModelCall() {
	report := s.service.Review(s.ctx, dto.ReviewRequest{Story: "   "})

	s.Equal(1, report.Rating.Score)
	s.Equal("Not Passed", report.Rating.Label)
	s.Require().NotNil(report.Error)
	s.Equal("Story is required.", report.Error.Message)
}
