package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/emergent-grounds/guardian/moderation/helpers"
)

const (
	starterBatchSize   = 3
	contextSuggestions = 2
)

// RequestStarters is the pull side of the suggestion throttler. A client
// calls it when a participant asks for inspiration or when its health signal
// drops. Returns nil when throttled. healthScore < 0 means no health signal
// was supplied and the participant's last report (if any) is used instead;
// contextMsgs may be nil.
func (e *Engine) RequestStarters(ctx context.Context, roomID, participantID string, healthScore float64, contextMsgs []Message) *SuggestionResult {
	rs := e.store.room(roomID)
	now := e.now()

	rs.mu.Lock()
	p := rs.participant(participantID)
	if p.SuggestUsedRecently {
		rs.mu.Unlock()
		suggestionsThrottled.Inc()
		return nil
	}
	if !p.LastOfferedAt.IsZero() && now.Sub(p.LastOfferedAt) < e.Config.SuggestionCooldown {
		rs.mu.Unlock()
		suggestionsThrottled.Inc()
		return nil
	}
	p.LastOfferedAt = now
	if healthScore >= 0 {
		p.LastHealth = healthScore
	} else {
		// fall back to the last health report for this participant
		healthScore = p.LastHealth
	}
	lowHealth := healthScore >= 0 && healthScore < e.Config.SuggestionHealthThreshold
	rs.mu.Unlock()

	if lowHealth && len(contextMsgs) > 0 {
		return e.contextualSuggestions(ctx, roomID, contextMsgs)
	}

	rs.mu.Lock()
	starters := e.unusedStarters(p)
	rs.mu.Unlock()
	suggestionsOffered.Inc()
	return &SuggestionResult{Starters: starters}
}

// contextualSuggestions asks the completion service for suggestions grounded
// in recent messages, then falls back to topic extraction and finally to the
// generic pool.
func (e *Engine) contextualSuggestions(ctx context.Context, roomID string, contextMsgs []Message) *SuggestionResult {
	res := &SuggestionResult{
		Resurfaced: true,
		Message:    e.Catalog.ResurfacedMessage,
	}

	if e.Completions != nil {
		starters, err := e.Completions.Suggestions(ctx, chatHistory(contextMsgs), contextSuggestions)
		if err == nil {
			res.Starters = starters
			suggestionsOffered.Inc()
			return res
		}
		e.Logger.Warn("contextual suggestions failed, using topic fallback", "room", roomID, "err", err)
	}

	res.Starters = e.topicFallbacks(contextMsgs)
	suggestionsOffered.Inc()
	return res
}

// topicFallbacks builds suggestions from words extracted out of the last few
// messages, or returns the generic pool when nothing usable turns up.
func (e *Engine) topicFallbacks(contextMsgs []Message) []string {
	if len(contextMsgs) > 3 {
		contextMsgs = contextMsgs[len(contextMsgs)-3:]
	}
	var topics []string
	for _, m := range contextMsgs {
		topics = append(topics, helpers.ExtractTopics(m.Content)...)
	}
	topics = helpers.DedupeStrings(topics)
	if len(topics) == 0 {
		return append([]string(nil), e.Catalog.GenericSuggestions...)
	}

	rand.Shuffle(len(topics), func(i, j int) { topics[i], topics[j] = topics[j], topics[i] })
	first := topics[0]
	second := "that"
	if len(topics) > 1 {
		second = topics[1]
	}
	return []string{
		fmt.Sprintf(e.Catalog.TopicTemplates[0], first),
		fmt.Sprintf(e.Catalog.TopicTemplates[1], second),
	}
}

// unusedStarters returns a shuffled batch of starters the participant hasn't
// seen yet, recycling the catalog once it is exhausted. Callers must hold the
// room lock.
func (e *Engine) unusedStarters(p *participantState) []string {
	var pool []string
	for _, s := range e.Catalog.Starters {
		if !p.UsedStarters[s] {
			pool = append(pool, s)
		}
	}
	if len(pool) < starterBatchSize {
		// catalog exhausted, start over
		p.UsedStarters = make(map[string]bool)
		pool = append([]string(nil), e.Catalog.Starters...)
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > starterBatchSize {
		pool = pool[:starterBatchSize]
	}
	for _, s := range pool {
		p.UsedStarters[s] = true
	}
	return pool
}

// MarkStarterUsed records that the participant picked a suggestion and hides
// further ones until the flag auto-clears.
func (e *Engine) MarkStarterUsed(roomID, participantID, starter string) {
	rs := e.store.room(roomID)
	rs.mu.Lock()
	defer rs.mu.Unlock()

	p := rs.participant(participantID)
	p.SuggestUsedRecently = true
	if starter != "" {
		p.UsedStarters[starter] = true
	}

	if t, ok := rs.starterTimers[participantID]; ok {
		t.Stop()
	}
	rs.starterTimers[participantID] = time.AfterFunc(e.Config.SuggestionCooldown, func() {
		rs.mu.Lock()
		p.SuggestUsedRecently = false
		delete(rs.starterTimers, participantID)
		rs.mu.Unlock()
	})
}
