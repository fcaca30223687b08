package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"spendlens/internal/llm"
	"spendlens/internal/models"
)

var ErrAssignmentInvalidJSON = errors.New("assignment response is not valid JSON")

// OutOfScopeIDError means the model returned an id that is not part of
// the current batch. This is never repaired.
type OutOfScopeIDError struct {
	ID int
}

func (e *OutOfScopeIDError) Error() string {
	return fmt.Sprintf("assignment references unknown transaction id %d", e.ID)
}

// DuplicateIDError means an id was assigned to more than one category.
// This is never repaired.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("transaction id %d assigned to multiple categories", e.ID)
}

// IncompleteAssignmentError means ids were still unassigned after the
// single repair attempt.
type IncompleteAssignmentError struct {
	Missing []int
}

func (e *IncompleteAssignmentError) Error() string {
	return fmt.Sprintf("assignment incomplete after repair, missing ids: %s", joinIDs(e.Missing))
}

type assignmentPayload struct {
	Categories []categoryAssignment `json:"categories"`
}

type categoryAssignment struct {
	Category string `json:"category"`
	TxnIDs   []int  `json:"txnIds"`
}

// CategorizationService sends line items to the model in fixed-size
// batches and reconciles the returned assignment against the batch.
// Out-of-scope and duplicate ids fail the request outright. Missing
// ids get exactly one repair call per batch, after which the batch
// either covers every id or the request fails.
type CategorizationService struct {
	caller    *modelCaller
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
	batchSize int
	maxTokens int
}

func NewCategorizationService(
	gateway llm.Client,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	batchSize int,
	maxTokens int,
) CategorizationServiceInterface {
	return &CategorizationService{
		caller: &modelCaller{
			gateway: gateway,
			breaker: breaker,
			metrics: metrics,
			logger:  logger,
		},
		metrics:   metrics,
		logger:    logger,
		batchSize: batchSize,
		maxTokens: maxTokens,
	}
}

func (s *CategorizationService) Categorize(ctx context.Context, items []models.LineItem) (map[int]string, error) {
	assignment := make(map[int]string, len(items))

	for start := 0; start < len(items); start += s.batchSize {
		end := start + s.batchSize
		if end > len(items) {
			end = len(items)
		}

		batchAssign, err := s.categorizeBatch(ctx, items[start:end])
		if err != nil {
			s.metrics.IncrementCounter("categorization.reconcile_failure", map[string]string{
				"reason": reconcileFailureReason(err),
			})
			return nil, err
		}

		for id, category := range batchAssign {
			if _, exists := assignment[id]; exists {
				return nil, &DuplicateIDError{ID: id}
			}
			assignment[id] = category
		}
	}

	for _, item := range items {
		category, ok := assignment[item.ID]
		if !ok {
			return nil, &IncompleteAssignmentError{Missing: []int{item.ID}}
		}
		if item.Kind == models.ItemKindRefund {
			assignment[item.ID] = models.CategoryRefunds
			continue
		}
		if category == "" || !models.IsValidCategory(category) {
			s.logger.Warn("model returned unknown category, coercing",
				"id", item.ID,
				"category", category)
			assignment[item.ID] = models.CategoryOther
		}
	}

	return assignment, nil
}

func (s *CategorizationService) categorizeBatch(ctx context.Context, batch []models.LineItem) (map[int]string, error) {
	expected := make(map[int]struct{}, len(batch))
	expectedIDs := make([]int, 0, len(batch))
	for _, item := range batch {
		expected[item.ID] = struct{}{}
		expectedIDs = append(expectedIDs, item.ID)
	}

	userPrompt, err := buildCategorizePrompt(batch)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("categorization.batch", nil)
	raw, err := s.caller.call(ctx, "categorize", categorizeSystemPrompt, userPrompt, s.maxTokens)
	if err != nil {
		return nil, err
	}

	assign, missing, err := parseAssignment(raw, expected)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		return assign, nil
	}

	s.logger.Warn("assignment incomplete, issuing repair call",
		"batch_size", len(batch),
		"missing", len(missing))
	s.metrics.IncrementCounter("llm.repair_attempt", map[string]string{
		"operation": "categorize",
	})

	repairRaw, err := s.caller.call(ctx, "categorize", categorizeSystemPrompt,
		buildRepairPrompt(raw, expectedIDs, missing), s.maxTokens)
	if err != nil {
		return nil, err
	}

	assign, missing, err = parseAssignment(repairRaw, expected)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &IncompleteAssignmentError{Missing: missing}
	}
	return assign, nil
}

// parseAssignment decodes a model response and checks it against the
// expected id set. Out-of-scope and duplicate ids are fatal, missing
// ids are returned sorted for the caller to decide on repair.
func parseAssignment(raw string, expected map[int]struct{}) (map[int]string, []int, error) {
	cleaned := llm.ExtractJSON(raw)

	var payload assignmentPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAssignmentInvalidJSON, err)
	}

	assign := make(map[int]string)
	for _, group := range payload.Categories {
		for _, id := range group.TxnIDs {
			if _, ok := expected[id]; !ok {
				return nil, nil, &OutOfScopeIDError{ID: id}
			}
			if _, dup := assign[id]; dup {
				return nil, nil, &DuplicateIDError{ID: id}
			}
			assign[id] = group.Category
		}
	}

	missing := make([]int, 0)
	for id := range expected {
		if _, ok := assign[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Ints(missing)
	return assign, missing, nil
}

func reconcileFailureReason(err error) string {
	var outOfScope *OutOfScopeIDError
	var duplicate *DuplicateIDError
	var incomplete *IncompleteAssignmentError
	switch {
	case errors.Is(err, ErrAssignmentInvalidJSON):
		return "invalid_json"
	case errors.As(err, &outOfScope):
		return "out_of_scope_id"
	case errors.As(err, &duplicate):
		return "duplicate_id"
	case errors.As(err, &incomplete):
		return "incomplete"
	default:
		return "llm_error"
	}
}
