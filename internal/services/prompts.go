package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"spendlens/internal/models"
)

const categorizeSystemPrompt = `You are a financial transaction categorization engine.
You assign every transaction to exactly one category from a fixed list.
Respond with JSON only, no prose and no markdown fences.`

const categorizeResponseShape = `{"categories":[{"category":"<name>","txnIds":[<id>,...]}]}`

// promptItem is the wire shape line items take inside model prompts.
type promptItem struct {
	ID       int             `json:"id"`
	Date     string          `json:"date"`
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     string          `json:"kind"`
}

func buildCategorizePrompt(items []models.LineItem) (string, error) {
	wire := make([]promptItem, 0, len(items))
	for _, it := range items {
		wire = append(wire, promptItem{
			ID:       it.ID,
			Date:     it.DateString(),
			Merchant: it.Merchant,
			Amount:   it.Amount,
			Kind:     it.Kind,
		})
	}
	payload, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("marshal prompt items: %w", err)
	}

	var b strings.Builder
	b.WriteString("Categorize each transaction below into exactly one of these categories:\n")
	b.WriteString(strings.Join(models.AllCategories(), ", "))
	b.WriteString("\n\nRules:\n")
	b.WriteString("- Every transaction id must appear in exactly one category.\n")
	b.WriteString("- Use only ids from the input. Never invent ids.\n")
	b.WriteString("- Use only the category names listed above. Never invent categories.\n")
	b.WriteString("- If kind is \"refund\", the category MUST be \"Refunds\".\n")
	b.WriteString("- Respond with exactly this JSON shape: ")
	b.WriteString(categorizeResponseShape)
	b.WriteString("\n\nTransactions:\n")
	b.Write(payload)
	return b.String(), nil
}

func buildRepairPrompt(previousResponse string, expected, missing []int) string {
	var b strings.Builder
	b.WriteString("Your previous categorization response was incomplete.\n\n")
	b.WriteString("Previous response:\n")
	b.WriteString(previousResponse)
	b.WriteString("\n\nExpected transaction ids: ")
	b.WriteString(joinIDs(expected))
	b.WriteString("\nMissing transaction ids: ")
	b.WriteString(joinIDs(missing))
	b.WriteString("\n\nRespond again with the full assignment covering every expected id exactly once, ")
	b.WriteString("keeping every transaction with kind \"refund\" in the \"Refunds\" category, ")
	b.WriteString("using the same JSON shape: ")
	b.WriteString(categorizeResponseShape)
	b.WriteString("\nJSON only, no prose.")
	return b.String()
}

const insightsSystemPrompt = `You are a personal finance analyst writing a short spending report.
You receive precomputed aggregates. Never recompute or invent figures, quote only the numbers given.
Respond with JSON only, no prose and no markdown fences.`

const insightsResponseShape = `{
  "highlights": ["<string>", ...],
  "topSpendingCategory": "<string>",
  "topMerchant": "<string>",
  "concentrationNotes": ["<string>", ...],
  "optimizationIdeas": ["<string>", ...],
  "anomalies": ["<string>", ...]
}`

func buildInsightsPrompt(summary models.InsightsSummary) (string, error) {
	payload, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("marshal insights summary: %w", err)
	}

	var b strings.Builder
	b.WriteString("Write spending insights for the period below. ")
	b.WriteString("Base every statement on the supplied figures only.\n\n")
	b.WriteString("Aggregates:\n")
	b.Write(payload)
	b.WriteString("\n\nRespond with exactly this JSON shape:\n")
	b.WriteString(insightsResponseShape)
	return b.String(), nil
}

const reviewSystemPrompt = `You are a senior product analyst reviewing user stories and acceptance criteria.
You are strict, concrete and constructive. Respond with JSON only, no prose and no markdown fences.`

const reviewResponseShape = `{
  "rating": {
    "score_1_to_5": <int>,
    "label": "<Excellent|Good|Needs Work|Not Passed>",
    "one_line_summary": "<string>",
    "critical": <int>,
    "major": <int>,
    "minor": <int>
  },
  "data": {
    "missing_acceptance_criteria": [{"severity": "<critical|major|minor>", "issue": "<string>", "suggestion": "<string>"}],
    "ambiguous_language": [{"quote": "<string>", "why_ambiguous": "<string>", "suggestion": "<string>"}],
    "edge_cases": [{"case": "<string>", "expected_behavior_question": "<string>"}],
    "non_testable_or_weak_criteria": [{"quote": "<string>", "problem": "<string>", "rewrite": "<string>"}],
    "missing_context_questions": ["<string>"]
  },
  "rewrite": {
    "user_story": "<string>",
    "acceptance_criteria": ["<string>", ...]
  },
  "jira_comment_md": "<markdown string>"
}`

func buildReviewPrompt(storyContext, story, acceptanceCriteria string) string {
	var b strings.Builder
	b.WriteString("Review the user story below for completeness, clarity and testability.\n")
	b.WriteString("Find missing acceptance criteria, ambiguous language, unhandled edge cases ")
	b.WriteString("and criteria that cannot be verified. Then rewrite the story properly.\n\n")
	if strings.TrimSpace(storyContext) != "" {
		b.WriteString("Context:\n")
		b.WriteString(storyContext)
		b.WriteString("\n\n")
	}
	b.WriteString("User story:\n")
	b.WriteString(story)
	b.WriteString("\n\n")
	if strings.TrimSpace(acceptanceCriteria) != "" {
		b.WriteString("Acceptance criteria:\n")
		b.WriteString(acceptanceCriteria)
		b.WriteString("\n\n")
	}
	b.WriteString("Respond with exactly this JSON shape:\n")
	b.WriteString(reviewResponseShape)
	return b.String()
}

const reviewAskValidJSONPrompt = `Your previous response was not valid JSON.
Respond again with the same review as a single valid JSON object matching the required shape.
JSON only, no prose and no markdown fences.`

func buildReviewFixJSONPrompt(broken string) string {
	var b strings.Builder
	b.WriteString("The following text was supposed to be a single valid JSON object but is broken.\n")
	b.WriteString("Fix it into valid JSON without changing its meaning. ")
	b.WriteString("Respond with the JSON object only.\n\n")
	b.WriteString(broken)
	return b.String()
}

func joinIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ", ")
}
