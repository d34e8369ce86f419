// Text-scoring adapter for the moderation engine.
//
// Wraps an external comment-analysis service (Perspective-style attribute
// scoring) behind a small interface, and degrades to local regex pattern
// matching whenever the service is unreachable or misconfigured. Callers can
// always distinguish authoritative results from fallback results.
package classifier

import "context"

// Attribute names, matching the upstream comment-analysis API.
const (
	AttrToxicity       = "TOXICITY"
	AttrSevereToxicity = "SEVERE_TOXICITY"
	AttrIdentityAttack = "IDENTITY_ATTACK"
	AttrInsult         = "INSULT"
	AttrThreat         = "THREAT"
)

// DefaultAttributes are requested when the caller doesn't specify a set.
var DefaultAttributes = []string{
	AttrToxicity,
	AttrSevereToxicity,
	AttrIdentityAttack,
	AttrInsult,
	AttrThreat,
}

// Scores for a single piece of text. Probabilities are in [0, 1].
type Result struct {
	Scores map[string]float64
	// true when the scores came from local pattern matching rather than the
	// external service
	Fallback bool
}

// Reports whether the named attribute scored at or above the threshold. An
// attribute absent from the result never passes.
func (r *Result) Above(attr string, threshold float64) bool {
	if r == nil {
		return false
	}
	score, ok := r.Scores[attr]
	return ok && score >= threshold
}

type Classifier interface {
	// Scores the text for the default attribute set. Empty text returns an
	// empty (non-nil) result without calling the service. Implementations
	// never surface service failures as errors; they degrade to a fallback
	// result instead.
	AnalyzeText(ctx context.Context, text string) (*Result, error)
}
