package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"spendlens/internal/dto"
	"spendlens/internal/llm"
)

// ReviewService reviews a user story through the model with a bounded
// repair ladder: parse the response as-is, then ask for valid JSON,
// then ask the model to fix its own broken JSON. After three failed
// attempts or any provider error the caller gets the fixed-shape
// score-1 fallback report, never an HTTP error.
type ReviewService struct {
	caller    *modelCaller
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
	maxTokens int
}

func NewReviewService(
	gateway llm.Client,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	maxTokens int,
) ReviewServiceInterface {
	return &ReviewService{
		caller: &modelCaller{
			gateway: gateway,
			breaker: breaker,
			metrics: metrics,
			logger:  logger,
		},
		metrics:   metrics,
		logger:    logger,
		maxTokens: maxTokens,
	}
}

func (s *ReviewService) Review(ctx context.Context, req dto.ReviewRequest) dto.ReviewReport {
	if strings.TrimSpace(req.Story) == "" {
		return s.fallback("Story is required.", "Provide a user story to review.", "empty_story")
	}

	userPrompt := buildReviewPrompt(req.Context, req.Story, req.AcceptanceCriteria)

	raw, err := s.caller.call(ctx, "review", reviewSystemPrompt, userPrompt, s.maxTokens)
	if err != nil {
		return s.fallback("The review service is temporarily unavailable.",
			"Try again in a minute.", "llm_error")
	}
	if report, ok := parseReviewReport(raw); ok {
		s.metrics.IncrementCounter("review.completed", map[string]string{"outcome": "success"})
		return report
	}

	s.logger.Warn("review response is not valid JSON, asking again")
	s.metrics.IncrementCounter("llm.repair_attempt", map[string]string{"operation": "review"})
	raw, err = s.caller.call(ctx, "review", reviewSystemPrompt,
		userPrompt+"\n\n"+reviewAskValidJSONPrompt, s.maxTokens)
	if err != nil {
		return s.fallback("The review service is temporarily unavailable.",
			"Try again in a minute.", "llm_error")
	}
	if report, ok := parseReviewReport(raw); ok {
		s.metrics.IncrementCounter("review.completed", map[string]string{"outcome": "repaired"})
		return report
	}

	s.logger.Warn("review response still invalid, asking model to fix the JSON")
	s.metrics.IncrementCounter("llm.repair_attempt", map[string]string{"operation": "review"})
	fixed, err := s.caller.call(ctx, "review", reviewSystemPrompt,
		buildReviewFixJSONPrompt(raw), s.maxTokens)
	if err != nil {
		return s.fallback("The review service is temporarily unavailable.",
			"Try again in a minute.", "llm_error")
	}
	if report, ok := parseReviewReport(fixed); ok {
		s.metrics.IncrementCounter("review.completed", map[string]string{"outcome": "repaired"})
		return report
	}

	return s.fallback("The reviewer could not produce a readable report.",
		"Shorten the story or try again.", "parse_failure")
}

func (s *ReviewService) fallback(message, hint, reason string) dto.ReviewReport {
	s.logger.Warn("returning fallback review report", "reason", reason)
	s.metrics.IncrementCounter("review.completed", map[string]string{"outcome": "fallback"})
	return dto.ReviewReport{
		Rating: dto.ReviewRating{
			Score:          1,
			Label:          "Not Passed",
			OneLineSummary: "The review could not be completed.",
		},
		Data: dto.ReviewData{
			MissingAcceptanceCriteria: []dto.MissingCriterion{},
			AmbiguousLanguage:         []dto.AmbiguousPhrase{},
			EdgeCases:                 []dto.EdgeCase{},
			NonTestableOrWeakCriteria: []dto.WeakCriterion{},
			MissingContextQuestions:   []string{},
		},
		Rewrite: dto.ReviewRewrite{
			AcceptanceCriteria: []string{},
		},
		Error: &dto.ReviewError{
			Message: message,
			Hint:    hint,
		},
	}
}

// parseReviewReport accepts a response only if it decodes into the
// report shape with a rating score in range.
func parseReviewReport(raw string) (dto.ReviewReport, bool) {
	var report dto.ReviewReport
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &report); err != nil {
		return dto.ReviewReport{}, false
	}
	if report.Rating.Score < 1 || report.Rating.Score > 5 {
		return dto.ReviewReport{}, false
	}
	return report, true
}
