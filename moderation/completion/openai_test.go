package completion

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatResponse(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   "gpt-3.5-turbo",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestOpenAIClientComplete(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse("  What feels most alive here?  "))
	}))
	defer srv.Close()

	c := NewOpenAIClient("test-key", "", slog.Default(), option.WithBaseURL(srv.URL))
	out, err := c.Complete(ctx, "be brief", []ChatMessage{{Role: RoleUser, Content: "hello"}})
	require.NoError(err)
	assert.Equal("What feels most alive here?", out)
}

func TestOpenAIClientRetriesTransientFailure(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "boom", "type": "server_error"}})
			return
		}
		json.NewEncoder(w).Encode(chatResponse(`["try this", "or this"]`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("test-key", "", slog.Default(), option.WithBaseURL(srv.URL))
	out, err := c.Suggestions(ctx, []ChatMessage{{Role: RoleUser, Content: "hi"}}, 2)
	require.NoError(err)
	assert.Equal([]string{"try this", "or this"}, out)
	assert.Equal(int32(2), calls.Load())
}

func TestOpenAIClientQuotaLatch(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{
			"message": "You exceeded your current quota",
			"type":    "insufficient_quota",
			"code":    "insufficient_quota",
		}})
	}))
	defer srv.Close()

	c := NewOpenAIClient("test-key", "", slog.Default(), option.WithBaseURL(srv.URL))
	_, err := c.Complete(ctx, "sys", []ChatMessage{{Role: RoleUser, Content: "hi"}})
	assert.ErrorIs(err, ErrQuotaExhausted)
	assert.Equal(int32(1), calls.Load())

	// latched: no further network calls
	_, err = c.Complete(ctx, "sys", []ChatMessage{{Role: RoleUser, Content: "hi again"}})
	assert.ErrorIs(err, ErrQuotaExhausted)
	assert.Equal(int32(1), calls.Load())
}
