// Package llm is the single chokepoint for model provider calls. It
// performs no retries of its own; repair and retry policy belongs to
// callers because the right strategy differs per operation.
package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTransport covers connection failures and timeouts; callers may
	// treat these as retryable.
	ErrTransport = errors.New("provider transport failure")

	// ErrUnexpectedResponse means the provider answered 2xx but the
	// envelope was not usable (no text content).
	ErrUnexpectedResponse = errors.New("unexpected provider response")
)

// StatusError is returned when the provider answers with a non-2xx
// status. Body is kept for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// Client is the gateway contract: one outbound model call per Complete.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}
