package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"spendlens/internal/errors"
	"spendlens/internal/llm"
	"spendlens/internal/parser"
	"spendlens/internal/services"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Input errors: SendError(c, errors.InputNoFiles)
//    - Reconciliation failures: SendError(c, errors.ReconcileIncomplete)
//
// 2. SendServiceError - For errors bubbling out of the pipeline services;
//    maps known service and provider errors to their public codes and
//    falls back to SendSystemError for everything else
//
// 3. SendSystemError - For system/internal errors (500 responses)
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
// Used for backward compatibility in tests
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps pipeline errors onto public error codes.
func SendServiceError(c echo.Context, err error) error {
	var outOfScope *services.OutOfScopeIDError
	var duplicate *services.DuplicateIDError
	var incomplete *services.IncompleteAssignmentError
	var statusErr *llm.StatusError

	switch {
	case stderrors.Is(err, services.ErrNoFiles):
		return SendError(c, errors.InputNoFiles)
	case stderrors.Is(err, services.ErrNoUsableRows):
		return SendError(c, errors.InputNoUsableRows)
	case stderrors.Is(err, parser.ErrMissingDateColumn),
		stderrors.Is(err, parser.ErrMissingAmountColumn):
		return SendError(c, errors.InputMissingColumn, errors.WithDetails(err.Error()))
	case stderrors.Is(err, parser.ErrInvalidDate):
		return SendError(c, errors.InputInvalidDate, errors.WithDetails(err.Error()))
	case stderrors.Is(err, parser.ErrInvalidAmount):
		return SendError(c, errors.InputInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, parser.ErrInvalidMonthKey):
		return SendError(c, errors.InputInvalidMonth, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrAssignmentInvalidJSON):
		return SendError(c, errors.ReconcileInvalidJSON)
	case stderrors.As(err, &outOfScope):
		return SendError(c, errors.ReconcileOutOfScopeID, errors.WithDetails(err.Error()))
	case stderrors.As(err, &duplicate):
		return SendError(c, errors.ReconcileDuplicateID, errors.WithDetails(err.Error()))
	case stderrors.As(err, &incomplete):
		return SendError(c, errors.ReconcileIncomplete, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInsightsMalformed):
		return SendError(c, errors.InsightsMalformed)
	case stderrors.Is(err, services.ErrCircuitBreakerOpen):
		return SendError(c, errors.LLMCircuitOpen)
	case stderrors.As(err, &statusErr):
		return SendError(c, errors.LLMProviderStatus)
	case stderrors.Is(err, llm.ErrTransport):
		return SendError(c, errors.LLMTransportFailure)
	case stderrors.Is(err, llm.ErrUnexpectedResponse):
		return SendError(c, errors.LLMUnexpectedResponse)
	default:
		return SendSystemError(c, err)
	}
}
