package engine

import (
	"context"
	"math/rand"

	"github.com/emergent-grounds/guardian/moderation/completion"
	"github.com/emergent-grounds/guardian/moderation/rescache"
)

// pick returns a uniformly random element of pool, or "" for an empty pool.
func (e *Engine) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rand.Intn(len(pool))]
}

// reflectionInterval chooses how many messages to wait before the next
// reflection. Early conversations get frequent prompts, long smooth ones get
// room to breathe. The fixed-interval mode pins it to 2 for local testing.
func (e *Engine) reflectionInterval(rs *roomState) int {
	if e.Config.FixedReflectionInterval {
		return 2
	}
	total := len(rs.History)
	switch {
	case total < 5:
		return 2 + rand.Intn(2) // 2-3
	case total > 10 && rs.InterventionCount == 0:
		return 6 + rand.Intn(3) // 6-8
	default:
		return 4 + rand.Intn(3) // 4-6
	}
}

// generateReflection produces a reflection prompt for the room, preferring a
// generated one grounded in the conversation and falling back to the static
// pool on any completion failure. history is a snapshot taken under the room
// lock; this method runs without it.
func (e *Engine) generateReflection(ctx context.Context, roomID string, history []Message) *ModerationAction {
	reflectionsGenerated.Inc()
	if e.Completions == nil {
		return e.staticReflection()
	}

	fp := ""
	if e.Cache != nil {
		fp = rescache.Fingerprint(snippets(history))
		if cached, ok, err := e.Cache.Get(ctx, roomID, fp); err == nil && ok {
			return &ModerationAction{Kind: ActionReflection, Content: cached}
		}
	}

	content, err := e.Completions.Complete(ctx, reflectionSystemPrompt, chatHistory(history))
	if err != nil {
		e.Logger.Warn("reflection generation failed, using static prompt", "room", roomID, "err", err)
		return e.staticReflection()
	}

	if e.Cache != nil && fp != "" {
		if err := e.Cache.Set(ctx, roomID, fp, content); err != nil {
			e.Logger.Warn("caching reflection failed", "room", roomID, "err", err)
		}
	}
	return &ModerationAction{Kind: ActionReflection, Content: content}
}

func (e *Engine) staticReflection() *ModerationAction {
	return &ModerationAction{Kind: ActionReflection, Content: e.pick(e.Catalog.Reflections)}
}

func snippets(history []Message) []rescache.Snippet {
	out := make([]rescache.Snippet, len(history))
	for i, m := range history {
		s := rescache.Snippet{Content: m.Content}
		if !m.IsSystem() {
			s.Sender = m.Sender
		}
		out[i] = s
	}
	return out
}

func chatHistory(history []Message) []completion.ChatMessage {
	out := make([]completion.ChatMessage, len(history))
	for i, m := range history {
		cm := completion.ChatMessage{Role: completion.RoleUser, Content: m.Content}
		if m.IsSystem() {
			cm.Role = completion.RoleSystem
		} else {
			cm.Name = m.Sender
		}
		out[i] = cm
	}
	return out
}
