package helpers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spaolacci/murmur3"
)

func DedupeStrings(in []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range in {
		if !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}
	return out
}

// returns a fast, compact hash of a string
//
// current implementation uses murmur3, default seed, and hex encoding
func HashOfString(s string) string {
	val := murmur3.Sum64([]byte(s))
	return fmt.Sprintf("%016x", val)
}

// Measures how much of the longer string's characters appear in the shorter
// one. Very short strings fall back to exact (case-insensitive) comparison.
// Returns a ratio in [0, 1].
func StringSimilarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) < 5 || len(rb) < 5 {
		if strings.EqualFold(a, b) {
			return 1
		}
		return 0
	}

	longer, shorter := ra, rb
	if len(rb) > len(ra) {
		longer, shorter = rb, ra
	}

	longerStr := string(longer)
	matches := 0
	for _, c := range shorter {
		if strings.ContainsRune(longerStr, c) {
			matches++
		}
	}
	return float64(matches) / float64(len(longer))
}

var (
	allCapsRun       = regexp.MustCompile(`([A-Z]{2,}\s+){5,}`)
	exclamationBurst = regexp.MustCompile(`!{3,}`)
	questionBurst    = regexp.MustCompile(`\?{2,}`)
)

// Detects shouting (sustained runs of capitalized words), exclamation bursts,
// and rhetorical question-mark bursts.
func HasAggressiveTone(text string) bool {
	if allCapsRun.MatchString(text) {
		return true
	}
	if exclamationBurst.MatchString(text) || strings.Count(text, "!") > 4 {
		return true
	}
	if questionBurst.MatchString(text) || strings.Count(text, "?") > 4 {
		return true
	}
	return false
}

var fillerWord = regexp.MustCompile(`(?i)^(haha|lol|hmm|oh|ok|yeah|yep|nope|k|y|n)$`)

// Exact match against a small set of filler/acknowledgement words ("ok",
// "lol", etc). Caller decides whether surrounding context excuses it.
func IsFillerWord(text string) bool {
	return fillerWord.MatchString(strings.TrimSpace(text))
}

var distressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(i feel|i am|i'm) (attacked|unsafe|uncomfortable|offended)\b`),
	regexp.MustCompile(`(?i)\bthis (is|feels) (uncomfortable|unsafe|hostile)\b`),
	regexp.MustCompile(`(?i)\b(stop|please stop|don't)\b`),
	regexp.MustCompile(`(?i)\byou('re| are) (attacking|insulting|offending) me\b`),
	regexp.MustCompile(`(?i)\bthat('s| is) (hurtful|mean|rude|offensive)\b`),
	regexp.MustCompile(`(?i)\bi('m| am) (hurt|upset|offended)\b`),
}

// Fixed phrase set indicating the author is in distress ("I feel attacked",
// "please stop", etc).
func ContainsDistressSignal(text string) bool {
	for _, p := range distressPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Truncates to at most max words, appending an ellipsis when trimmed.
func TruncateWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ") + "..."
}

var topicStopwords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "have": true, "about": true,
}

var questionWords = []string{"what", "how", "why", "when", "where", "who"}

// Pulls candidate topic words out of free-form text: words of four or more
// characters that aren't stopwords, plus any leading question words.
func ExtractTopics(text string) []string {
	var topics []string
	seen := make(map[string]bool)
	for _, word := range strings.Fields(text) {
		if len(word) >= 4 && !topicStopwords[strings.ToLower(word)] && !seen[word] {
			topics = append(topics, word)
			seen[word] = true
		}
	}
	lower := strings.ToLower(text)
	for _, q := range questionWords {
		if strings.Contains(lower, q+" ") && !seen[q] {
			topics = append(topics, q)
			seen[q] = true
		}
	}
	return topics
}
