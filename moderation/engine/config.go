package engine

import "time"

// Tunable constants for scoring, throttling, and cadence. The decay gate and
// similarity threshold are empirically tuned values carried over from the
// production moderation data; they're configurable rather than hard-coded so
// they can be revisited without a code change.
type Config struct {
	// probability at which a classifier attribute counts as present
	ClassifierThreshold float64
	// minimum elapsed time between suggestion offers to one participant,
	// and the auto-clear delay for the used-recently flag
	SuggestionCooldown time.Duration
	// conversation health below this requests contextual suggestions
	SuggestionHealthThreshold float64
	// always use a reflection interval of 2 (test/development mode)
	FixedReflectionInterval bool
	// good-behavior score decay applies only while the sender's consecutive
	// message count is at or below this
	DecayMaxConsecutive int
	// similarity at or above this counts a message as repetitive
	SimilarityThreshold float64
}

func DefaultConfig() Config {
	return Config{
		ClassifierThreshold:       0.8,
		SuggestionCooldown:        30 * time.Second,
		SuggestionHealthThreshold: 0.55,
		FixedReflectionInterval:   false,
		DecayMaxConsecutive:       3,
		SimilarityThreshold:       0.9,
	}
}
