package classifier

import (
	"context"
	"regexp"
	"strings"
)

// Local regex tables used when the external service is unavailable. These are
// deliberately blunt: they only need to catch the obvious cases well enough
// for scoring to keep working during an outage.
var fallbackPatterns = map[string][]*regexp.Regexp{
	AttrToxicity: {
		regexp.MustCompile(`(?i)\b(fuck|shit|ass|bitch|cunt|damn|dick|douchebag|asshole)\b`),
		regexp.MustCompile(`(?i)\b(go to hell|screw you|go fuck yourself)\b`),
	},
	AttrSevereToxicity: {
		regexp.MustCompile(`(?i)\b(motherfucker|cocksucker|fuckface|fucktard|cunt)\b`),
	},
	AttrIdentityAttack: {
		regexp.MustCompile(`(?i)\b(go back to your country|you people|you are a disgrace)\b`),
	},
	AttrInsult: {
		regexp.MustCompile(`(?i)\b(idiot|stupid|dumb|moron|loser|pathetic|worthless)\b`),
		regexp.MustCompile(`(?i)\b(shut up|you're an idiot|you're stupid|you're dumb)\b`),
	},
	AttrThreat: {
		regexp.MustCompile(`(?i)\b(kill|murder|hurt|punch|beat|attack|die|death)\b`),
		regexp.MustCompile(`(?i)\b(i will find you|i will hurt you|you'll regret|you'll pay)\b`),
	},
}

// Scores text against the local pattern tables. Each pattern match adds 0.3
// to the attribute score, capped at 1.0, so a single clear match lands below
// a strict threshold but repeated matches push past it.
func FallbackAnalyze(text string, attributes []string) *Result {
	scores := make(map[string]float64)
	for _, attr := range attributes {
		patterns, ok := fallbackPatterns[attr]
		if !ok {
			continue
		}
		matchCount := 0
		for _, p := range patterns {
			matchCount += len(p.FindAllString(text, -1))
		}
		score := float64(matchCount) * 0.3
		if score > 1.0 {
			score = 1.0
		}
		scores[attr] = score
	}
	return &Result{Scores: scores, Fallback: true}
}

var profanityWords = []string{
	"fuck", "shit", "asshole", "bitch", "cunt", "damn", "dick", "bastard",
}

// Simple substring profanity check. This is the only signal the scoring
// engine trusts from a fallback-tagged result; the graded attribute scores
// above are for callers that want a best-effort full mapping.
func ContainsProfanity(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range profanityWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// PatternClassifier scores exclusively with the local regex tables. Used
// when no API key is configured, and as the degraded path in tests.
type PatternClassifier struct{}

func (c *PatternClassifier) AnalyzeText(ctx context.Context, text string) (*Result, error) {
	if len(text) == 0 {
		return &Result{Scores: map[string]float64{}}, nil
	}
	return FallbackAnalyze(text, DefaultAttributes), nil
}
