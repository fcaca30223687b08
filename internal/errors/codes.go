package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// LLM provider error codes (LLM_*)
const (
	LLMTransportFailure   ErrorCode = "LLM_001"
	LLMProviderStatus     ErrorCode = "LLM_002"
	LLMUnexpectedResponse ErrorCode = "LLM_003"
	LLMCircuitOpen        ErrorCode = "LLM_004"
)

// Reconciliation error codes (RECONCILE_*)
const (
	ReconcileInvalidJSON  ErrorCode = "RECONCILE_001"
	ReconcileOutOfScopeID ErrorCode = "RECONCILE_002"
	ReconcileDuplicateID  ErrorCode = "RECONCILE_003"
	ReconcileIncomplete   ErrorCode = "RECONCILE_004"
)

// Input error codes (INPUT_*)
const (
	InputMissingColumn  ErrorCode = "INPUT_001"
	InputInvalidDate    ErrorCode = "INPUT_002"
	InputInvalidAmount  ErrorCode = "INPUT_003"
	InputNoUsableRows   ErrorCode = "INPUT_004"
	InputInvalidMonth   ErrorCode = "INPUT_005"
	InputNoFiles        ErrorCode = "INPUT_006"
	InputUnreadableFile ErrorCode = "INPUT_007"
)

// Insights error codes (INSIGHTS_*)
const (
	InsightsMalformed ErrorCode = "INSIGHTS_001"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Provider errors
	LLMTransportFailure:   "Could not reach the model provider",
	LLMProviderStatus:     "Model provider returned an error response",
	LLMUnexpectedResponse: "Model provider returned an unexpected response",
	LLMCircuitOpen:        "Model provider is temporarily unavailable",

	// Reconciliation errors
	ReconcileInvalidJSON:  "Model did not return valid categorization JSON",
	ReconcileOutOfScopeID: "Model returned a transaction id outside the request scope",
	ReconcileDuplicateID:  "Model assigned a transaction id to more than one category",
	ReconcileIncomplete:   "Model did not assign every transaction exactly once",

	// Input errors
	InputMissingColumn:  "CSV is missing a required column",
	InputInvalidDate:    "CSV contains an unrecognized date value",
	InputInvalidAmount:  "CSV contains an unparseable amount value",
	InputNoUsableRows:   "No usable transactions found after excluding payments and transfers",
	InputInvalidMonth:   "Invalid month selector; expected YYYY-MM",
	InputNoFiles:        "No files uploaded",
	InputUnreadableFile: "Uploaded file could not be read",

	// Insights errors
	InsightsMalformed: "Insights generation returned malformed output",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
