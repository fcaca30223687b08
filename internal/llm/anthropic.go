package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"spendlens/internal/config"
)

// AnthropicClient implements Client against the Anthropic Messages API.
type AnthropicClient struct {
	client      anthropic.Client
	model       string
	temperature float64
	logger      *slog.Logger
}

// NewAnthropicClient builds the gateway from the resolved configuration.
// SDK-level retries are disabled: a failed call surfaces immediately so
// callers can apply their own repair policy.
func NewAnthropicClient(cfg *config.Config) *AnthropicClient {
	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: cfg.LLM.ConnectTimeout,
			}).DialContext,
			TLSHandshakeTimeout: cfg.LLM.ConnectTimeout,
		},
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithRequestTimeout(cfg.LLM.RequestTimeout),
		option.WithMaxRetries(0),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLM.BaseURL))
	}

	return &AnthropicClient{
		client:      anthropic.NewClient(opts...),
		model:       cfg.LLM.Model,
		temperature: cfg.LLM.Temperature,
		logger:      slog.Default(),
	}
}

// Complete sends one message to the provider and returns the text of
// the first text content block.
func (c *AnthropicClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	started := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(c.temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			c.logger.Error("provider rejected request",
				slog.Int("status", apierr.StatusCode),
				slog.String("model", c.model),
			)
			return "", &StatusError{StatusCode: apierr.StatusCode, Body: apierr.Error()}
		}
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	c.logger.Info("provider call completed",
		slog.String("model", c.model),
		slog.Int64("tokens_in", message.Usage.InputTokens),
		slog.Int64("tokens_out", message.Usage.OutputTokens),
		slog.Duration("duration", time.Since(started)),
	)

	for _, block := range message.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return strings.TrimSpace(block.Text), nil
		}
	}

	return "", fmt.Errorf("%w: no text content", ErrUnexpectedResponse)
}
