// Generative-completion adapter for the moderation engine.
//
// Wraps a chat-completion service for two uses: free-form reflective prompts
// over conversation history, and short structured suggestion lists. Handles
// retry with backoff, permanent quota exhaustion, and the many shapes a model
// can return "a JSON array of two strings" in.
package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Role values for ChatMessage.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// A single turn of conversation context passed to the completion service.
type ChatMessage struct {
	Role    string
	Name    string
	Content string
}

// Returned once the completion service reports a permanent quota failure.
// The adapter stops calling the service for the remainder of the process;
// callers should fall back to static content.
var ErrQuotaExhausted = errors.New("completion quota exhausted")

// SanitizeName lowercases a display name and replaces any character outside
// [a-z0-9_-] with an underscore, matching what the chat API accepts in the
// per-message name field.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

type Generator interface {
	// Generates free-form text from a system instruction and message
	// sequence.
	Complete(ctx context.Context, system string, msgs []ChatMessage) (string, error)
	// Generates exactly count short suggestions grounded in the supplied
	// conversation context. Malformed model output is recovered by a parsing
	// cascade; only transport-level failure returns an error.
	Suggestions(ctx context.Context, msgs []ChatMessage, count int) ([]string, error)
}

func suggestionSystemPrompt(count int) string {
	return fmt.Sprintf(`Generate %d short, thoughtful conversation suggestions based on the conversation context provided.
The suggestions should:
1. Be relevant to the specific topics discussed
2. Reference ideas or themes from the conversation
3. Help deepen the dialogue
4. Be under 20 words each

Format your response as a JSON array of strings. Example:
["I'm curious about your perspective on...", "That reminds me of a time when..."]`, count)
}
