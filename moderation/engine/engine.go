package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emergent-grounds/guardian/moderation/classifier"
	"github.com/emergent-grounds/guardian/moderation/completion"
	"github.com/emergent-grounds/guardian/moderation/rescache"
)

const recentMessageCap = 10

// Engine is the moderation decision core for live two-person conversations.
// It tracks per-room state, scores each message for disruption, and decides
// whether to stay silent, drop in a reflection prompt, intervene, or
// disconnect a participant.
//
// Zero-value fields fall back to safe defaults: a nil Classifier uses local
// pattern matching, a nil Completions serves static reflection prompts, a
// nil Cache skips response caching.
type Engine struct {
	Logger      *slog.Logger
	Classifier  classifier.Classifier
	Completions completion.Generator
	Cache       rescache.ResponseCache
	Catalog     *Catalog
	Config      Config

	store *ConversationStore

	// overridable clock for tests
	Now func() time.Time
}

func NewEngine(logger *slog.Logger, cls classifier.Classifier, gen completion.Generator, cache rescache.ResponseCache, cfg Config) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		Logger:      logger,
		Classifier:  cls,
		Completions: gen,
		Cache:       cache,
		Catalog:     DefaultCatalog(),
		Config:      cfg,
		store:       NewConversationStore(),
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Welcome returns the greeting for a newly opened room, once. Later calls
// for the same room return nil.
func (e *Engine) Welcome(roomID string) *ModerationAction {
	rs := e.store.room(roomID)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.WelcomeSent {
		return nil
	}
	rs.WelcomeSent = true
	return &ModerationAction{Kind: ActionWelcome, Content: e.pick(e.Catalog.Welcome)}
}

// EndConversation drops all state for a room.
func (e *Engine) EndConversation(roomID string) {
	e.store.RemoveRoom(roomID)
}

// EvaluateMessage runs the full moderation pipeline for one inbound message:
// bookkeeping, cooldown gate, classification, scoring, the intervention
// state machine, and reflection cadence. Returns nil when the message needs
// no moderation.
func (e *Engine) EvaluateMessage(ctx context.Context, roomID string, msg Message) (act *ModerationAction, err error) {
	defer func() {
		if r := recover(); r != nil {
			evaluationPanics.Inc()
			e.Logger.Error("panic while evaluating message", "room", roomID, "sender", msg.Sender, "panic", r)
			act = nil
			err = fmt.Errorf("message evaluation panicked: %v", r)
		}
	}()

	messagesProcessed.Inc()
	rs := e.store.room(roomID)
	now := e.now()

	rs.mu.Lock()
	if msg.IsSystem() {
		rs.History = append(rs.History, msg)
		rs.Seq++
		rs.mu.Unlock()
		return nil, nil
	}

	var prevRoom *Message
	if n := len(rs.History); n > 0 {
		prevRoom = &rs.History[n-1]
	}
	rs.History = append(rs.History, msg)
	rs.Seq++

	p := rs.participant(msg.Sender)
	p.ConsecutiveMessages++
	p.MessageCount++
	for id, other := range rs.Participants {
		if id != msg.Sender {
			other.ConsecutiveMessages = 0
		}
	}

	// snapshot the sender's prior messages before recording this one; the
	// repetition check must not compare the message against itself
	prior := append([]Message(nil), p.Recent...)
	p.Recent = append(p.Recent, msg)
	if len(p.Recent) > recentMessageCap {
		p.Recent = p.Recent[len(p.Recent)-recentMessageCap:]
	}

	// cooldown gate runs before any scoring; locked-out senders only get a
	// reminder and the message never counts toward reflection cadence
	if p.inCooldown(now) {
		rs.mu.Unlock()
		cooldownReminders.Inc()
		return &ModerationAction{
			Kind:    ActionCooldownReminder,
			Content: e.pick(e.Catalog.Cooldown),
		}, nil
	}
	consecutive := p.ConsecutiveMessages
	rs.mu.Unlock()

	res := e.classify(ctx, msg.Content)

	rs.mu.Lock()
	sig := e.extractSignals(res, msg.Content, consecutive, prior, prevRoom)
	e.applyScore(p, sig)
	disruptionScore.Observe(p.Score)

	level := e.decideLevel(rs, p, msg.Sender, sig, now)
	tone := selectTone(sig, p.Score)

	if level != LevelNone {
		act = e.buildIntervention(rs, p, level, tone, now)
		score := p.Score
		rs.mu.Unlock()
		e.Logger.Info("intervention fired",
			"room", roomID,
			"sender", msg.Sender,
			"level", level.String(),
			"tone", string(tone),
			"score", score,
		)
		return act, nil
	}

	rs.ReflectionCounter++
	interval := e.reflectionInterval(rs)
	if rs.ReflectionCounter < interval {
		rs.mu.Unlock()
		return nil, nil
	}
	rs.ReflectionCounter = 0
	history := append([]Message(nil), rs.History...)
	rs.mu.Unlock()

	return e.generateReflection(ctx, roomID, history), nil
}

// classify runs the configured classifier, degrading to local pattern
// matching when none is configured or the call fails outright.
func (e *Engine) classify(ctx context.Context, text string) *classifier.Result {
	if e.Classifier == nil {
		return classifier.FallbackAnalyze(text, classifier.DefaultAttributes)
	}
	res, err := e.Classifier.AnalyzeText(ctx, text)
	if err != nil || res == nil {
		if err != nil {
			e.Logger.Warn("classifier call failed, falling back to pattern matching", "err", err)
		}
		return classifier.FallbackAnalyze(text, classifier.DefaultAttributes)
	}
	return res
}
