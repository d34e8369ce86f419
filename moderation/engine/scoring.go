package engine

import (
	"strings"

	"github.com/emergent-grounds/guardian/moderation/classifier"
	"github.com/emergent-grounds/guardian/moderation/helpers"
)

// signals are the per-message flags that feed scoring, level selection, and
// tone selection. Extracted once per evaluation and never persisted.
type signals struct {
	Profanity      bool
	IdentityAttack bool
	Threat         bool
	SevereToxicity bool
	Aggressive     bool
	Dominance      bool
	LowQuality     bool
	Distress       bool
}

// urgent reports whether the message carries content that bypasses normal
// intervention pacing.
func (s signals) urgent() bool {
	return s.SevereToxicity || s.IdentityAttack || s.Threat
}

// negative reports whether any disruption signal fired. Decay only applies
// when this is false.
func (s signals) negative() bool {
	return s.Profanity || s.IdentityAttack || s.Threat || s.SevereToxicity ||
		s.Aggressive || s.LowQuality
}

// extractSignals derives the flag set for one message. res may be a fallback
// result, in which case only local profanity matching is trusted; the other
// attributes simply don't contribute. prior holds the sender's recent
// messages before the current one, prevRoom is the room message immediately
// preceding the current one (nil when the room was empty).
func (e *Engine) extractSignals(res *classifier.Result, text string, consecutive int, prior []Message, prevRoom *Message) signals {
	var sig signals

	if res != nil && res.Fallback {
		sig.Profanity = classifier.ContainsProfanity(text)
	} else if res != nil {
		sig.Profanity = res.Above(classifier.AttrToxicity, e.Config.ClassifierThreshold)
		sig.IdentityAttack = res.Above(classifier.AttrIdentityAttack, e.Config.ClassifierThreshold)
		sig.Threat = res.Above(classifier.AttrThreat, e.Config.ClassifierThreshold)
		sig.SevereToxicity = res.Above(classifier.AttrSevereToxicity, e.Config.ClassifierThreshold)
	}

	sig.Aggressive = helpers.HasAggressiveTone(text)
	sig.Dominance = consecutive > 4
	sig.LowQuality = e.isLowQuality(text, prior, prevRoom)
	sig.Distress = helpers.ContainsDistressSignal(text)
	return sig
}

// isLowQuality flags single characters, bare filler words (unless answering
// a question), and near-duplicates of the sender's last two messages.
func (e *Engine) isLowQuality(text string, prior []Message, prevRoom *Message) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= 1 {
		return true
	}

	if helpers.IsFillerWord(trimmed) {
		if prevRoom != nil && strings.HasSuffix(strings.TrimSpace(prevRoom.Content), "?") {
			return false
		}
		return true
	}

	if len(prior) >= 2 {
		for _, msg := range prior[len(prior)-2:] {
			if helpers.StringSimilarity(msg.Content, text) >= e.Config.SimilarityThreshold {
				return true
			}
		}
	}
	return false
}

// applyScore updates the participant's disruption score for one message:
// an optional decay step for clean messages, then additive penalties.
// The score never drops below zero.
func (e *Engine) applyScore(p *participantState, sig signals) {
	if !sig.negative() && p.ConsecutiveMessages <= e.Config.DecayMaxConsecutive {
		if p.Score > 0 {
			p.Score = max(0, p.Score-0.5)
			scoreDecays.Inc()
		}
	}

	if sig.Profanity {
		p.Score += 3
	}
	if sig.IdentityAttack {
		p.Score += 5
	}
	if sig.Threat {
		p.Score += 5
	}
	if sig.SevereToxicity {
		p.Score += 5
	}
	if sig.Aggressive {
		p.Score += 2
	}
	switch {
	case sig.Dominance && sig.LowQuality:
		p.Score += 2
	case sig.Dominance:
		p.Score += 1
	case sig.LowQuality && p.ConsecutiveMessages > 2:
		p.Score += 1
	}
}
