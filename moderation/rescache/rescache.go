package rescache

import (
	"context"
	"strings"

	"github.com/emergent-grounds/guardian/moderation/helpers"
)

const fingerprintSnippetLen = 50

type ResponseCache interface {
	// Returns the cached content for the fingerprint, with a hit indicator.
	Get(ctx context.Context, room, fingerprint string) (string, bool, error)
	Set(ctx context.Context, room, fingerprint, val string) error
	Purge(ctx context.Context, room, fingerprint string) error
}

// One message's contribution to a fingerprint. Sender is empty for
// moderator/system messages.
type Snippet struct {
	Sender  string
	Content string
}

// Builds a cache fingerprint from the last 3 messages: sender tag (or
// "system") plus the first 50 characters of content, joined and hashed.
func Fingerprint(snips []Snippet) string {
	if len(snips) > 3 {
		snips = snips[len(snips)-3:]
	}
	parts := make([]string, 0, len(snips))
	for _, s := range snips {
		sender := s.Sender
		if sender == "" {
			sender = "system"
		}
		content := s.Content
		if runes := []rune(content); len(runes) > fingerprintSnippetLen {
			content = string(runes[:fingerprintSnippetLen])
		}
		parts = append(parts, sender+":"+content)
	}
	return helpers.HashOfString(strings.Join(parts, "|"))
}
