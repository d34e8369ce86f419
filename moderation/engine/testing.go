package engine

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/emergent-grounds/guardian/moderation/classifier"
	"github.com/emergent-grounds/guardian/moderation/completion"
	"github.com/emergent-grounds/guardian/moderation/rescache"
)

// StubClassifier returns canned attribute scores keyed by exact message
// text; unknown text scores zero everywhere.
type StubClassifier struct {
	Scores map[string]map[string]float64
	// when set, every call returns this error instead
	Err error
}

var _ classifier.Classifier = (*StubClassifier)(nil)

func (s *StubClassifier) AnalyzeText(ctx context.Context, text string) (*classifier.Result, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	scores, ok := s.Scores[text]
	if !ok {
		scores = map[string]float64{}
	}
	return &classifier.Result{Scores: scores}, nil
}

// StubGenerator serves fixed completion output, recording calls.
type StubGenerator struct {
	Reflection      string
	StarterList     []string
	Err             error
	CompleteCalls   int
	SuggestionCalls int
}

var _ completion.Generator = (*StubGenerator)(nil)

func (s *StubGenerator) Complete(ctx context.Context, system string, msgs []completion.ChatMessage) (string, error) {
	s.CompleteCalls++
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reflection, nil
}

func (s *StubGenerator) Suggestions(ctx context.Context, msgs []completion.ChatMessage, count int) ([]string, error) {
	s.SuggestionCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.StarterList, nil
}

// EngineTestFixture builds an engine with stub adapters, an in-memory cache,
// and a controllable clock parked at a fixed instant.
func EngineTestFixture() *Engine {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cache, _ := rescache.NewMemResponseCache(100)
	eng := NewEngine(
		logger,
		&StubClassifier{Scores: map[string]map[string]float64{}},
		&StubGenerator{Reflection: "What stands out to you in this exchange?"},
		cache,
		DefaultConfig(),
	)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	eng.Now = func() time.Time { return base }
	return eng
}
