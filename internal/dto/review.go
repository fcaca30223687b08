package dto

type ReviewRequest struct {
	Context            string `json:"context" validate:"omitempty,max=20000"`
	Story              string `json:"story" validate:"omitempty,max=20000"`
	AcceptanceCriteria string `json:"acceptanceCriteria" validate:"omitempty,max=20000"`
}

type ReviewRating struct {
	Score          int    `json:"score_1_to_5"`
	Label          string `json:"label"`
	OneLineSummary string `json:"one_line_summary"`
	Critical       int    `json:"critical"`
	Major          int    `json:"major"`
	Minor          int    `json:"minor"`
}

type MissingCriterion struct {
	Severity   string `json:"severity"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

type AmbiguousPhrase struct {
	Quote        string `json:"quote"`
	WhyAmbiguous string `json:"why_ambiguous"`
	Suggestion   string `json:"suggestion"`
}

type EdgeCase struct {
	Case                     string `json:"case"`
	ExpectedBehaviorQuestion string `json:"expected_behavior_question"`
}

type WeakCriterion struct {
	Quote   string `json:"quote"`
	Problem string `json:"problem"`
	Rewrite string `json:"rewrite"`
}

type ReviewData struct {
	MissingAcceptanceCriteria []MissingCriterion `json:"missing_acceptance_criteria"`
	AmbiguousLanguage         []AmbiguousPhrase  `json:"ambiguous_language"`
	EdgeCases                 []EdgeCase         `json:"edge_cases"`
	NonTestableOrWeakCriteria []WeakCriterion    `json:"non_testable_or_weak_criteria"`
	MissingContextQuestions   []string           `json:"missing_context_questions"`
}

type ReviewRewrite struct {
	UserStory          string   `json:"user_story"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
}

type ReviewError struct {
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

// ReviewReport has the same shape on success and on fallback. On
// fallback the rating is pinned to score 1 / "Not Passed" and Error
// carries the failure detail.
type ReviewReport struct {
	Rating        ReviewRating  `json:"rating"`
	Data          ReviewData    `json:"data"`
	Rewrite       ReviewRewrite `json:"rewrite"`
	JiraCommentMD string        `json:"jira_comment_md"`
	Error         *ReviewError  `json:"error,omitempty"`
}
