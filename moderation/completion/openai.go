package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	defaultModel      = "gpt-3.5-turbo"
	maxAttempts       = 3
	retryBaseDelay    = 500 * time.Millisecond
	reflectionTokens  = 100
	suggestionTokens  = 150
	completionTemp    = 0.7
)

// OpenAIClient generates completions via the OpenAI chat API.
//
// A permanent quota failure flips the disabled latch; from then on every call
// returns ErrQuotaExhausted without touching the network.
type OpenAIClient struct {
	Logger *slog.Logger

	client   openai.Client
	model    string
	disabled atomic.Bool
}

var _ Generator = (*OpenAIClient)(nil)

func NewOpenAIClient(apiKey, model string, logger *slog.Logger, opts ...option.RequestOption) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	return &OpenAIClient{
		Logger: logger,
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, system string, msgs []ChatMessage) (string, error) {
	return c.chat(ctx, system, msgs, reflectionTokens)
}

func (c *OpenAIClient) Suggestions(ctx context.Context, msgs []ChatMessage, count int) ([]string, error) {
	content, err := c.chat(ctx, suggestionSystemPrompt(count), msgs, suggestionTokens)
	if err != nil {
		return nil, err
	}
	return FormatSuggestions(ParseSuggestions(content), count), nil
}

func (c *OpenAIClient) chat(ctx context.Context, system string, msgs []ChatMessage, maxTokens int64) (string, error) {
	if c.disabled.Load() {
		return "", ErrQuotaExhausted
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs)+1)
	messages = append(messages, openai.SystemMessage(system))
	for _, m := range msgs {
		switch {
		case m.Role == RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case m.Name != "":
			messages = append(messages, openai.ChatCompletionMessageParamUnion{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(m.Content),
					},
					Name: openai.String(SanitizeName(m.Name)),
				},
			})
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    messages,
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(completionTemp),
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << attempt
			completionRetryCount.Inc()
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		resp, err := c.client.Chat.Completions.New(ctx, params)
		if err == nil {
			if len(resp.Choices) == 0 {
				lastErr = fmt.Errorf("completion response contained no choices")
				continue
			}
			completionRequestCount.Inc()
			return strings.TrimSpace(resp.Choices[0].Message.Content), nil
		}
		lastErr = err

		if isQuotaExhausted(err) {
			c.disabled.Store(true)
			completionQuotaDisabled.Set(1)
			c.Logger.Error("completion quota exhausted, disabling for process lifetime", "err", err)
			return "", ErrQuotaExhausted
		}
		if !isRetryable(err) {
			break
		}
	}
	completionFailureCount.Inc()
	return "", fmt.Errorf("completion failed after retries: %w", lastErr)
}

func isQuotaExhausted(err error) bool {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == "insufficient_quota" || apiErr.Type == "insufficient_quota"
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		// don't hammer the API on auth or malformed-request errors
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusBadRequest, http.StatusNotFound:
			return false
		}
	}
	return true
}
