package engine

// Tone selects which intervention message pool the engine draws from.
type Tone string

const (
	ToneReflective Tone = "reflective"
	ToneGrounded   Tone = "grounded"
	ToneDirective  Tone = "directive"
)

// selectTone is a pure function of the current signal flags and score. It is
// recomputed on every evaluation rather than carried over between messages.
func selectTone(sig signals, score float64) Tone {
	switch {
	case sig.Aggressive || sig.Profanity || sig.SevereToxicity || sig.IdentityAttack || sig.Threat || score >= 5:
		return ToneDirective
	case sig.Distress || sig.Dominance:
		return ToneGrounded
	default:
		return ToneReflective
	}
}
