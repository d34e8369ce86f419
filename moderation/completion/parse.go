package completion

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/emergent-grounds/guardian/moderation/helpers"
)

const maxSuggestionWords = 20

// Used when a suggestion slot can't be filled from model output.
var genericSuggestions = []string{
	"I'm curious to hear more about your perspective.",
	"That's an interesting point. Could you elaborate?",
}

var paddingSuggestions = []string{
	"I appreciate your thoughts. What else comes to mind?",
	"That's interesting. How did you come to that perspective?",
}

var (
	jsonFence    = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	genericFence = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
	jsonObject   = regexp.MustCompile(`(?s)\{.*?\}`)
	quotedString = regexp.MustCompile(`"([^"]+)"`)

	suggestionPrefixes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^I would suggest `),
		regexp.MustCompile(`(?i)^You could say `),
		regexp.MustCompile(`(?i)^Try saying `),
		regexp.MustCompile(`(?i)^Perhaps `),
		regexp.MustCompile(`(?i)^Maybe `),
	}
)

// Recovers a list of suggestions from whatever shape the model returned.
// Strategies, in order: fenced ```json block, generic fenced block, bare JSON
// array, JSON object containing an array field, whole-content JSON, regex
// extraction of quoted strings, and finally sentence splitting. Never returns
// nil for non-empty input; may return fewer items than the caller wants (see
// FormatSuggestions).
func ParseSuggestions(content string) []string {
	content = strings.TrimSpace(content)

	if m := jsonFence.FindStringSubmatch(content); m != nil {
		if out := suggestionsFromJSON(m[1]); out != nil {
			return out
		}
	}
	if m := genericFence.FindStringSubmatch(content); m != nil {
		if out := suggestionsFromJSON(m[1]); out != nil {
			return out
		}
	}
	if strings.HasPrefix(content, "[") && strings.HasSuffix(content, "]") {
		if out := suggestionsFromJSON(content); out != nil {
			return out
		}
	}
	if strings.Contains(content, "{") && strings.Contains(content, "}") {
		if m := jsonObject.FindString(content); m != "" {
			if out := suggestionsFromJSON(m); out != nil {
				return out
			}
		}
	}
	if out := suggestionsFromJSON(content); out != nil {
		return out
	}

	// regex fallback: grab quoted fragments
	matches := quotedString.FindAllStringSubmatch(content, -1)
	if len(matches) >= 2 {
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m[1])
		}
		return out
	}

	// last structural resort: split into sentences and strip hedging prefixes
	var sentences []string
	for _, s := range strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		for _, p := range suggestionPrefixes {
			s = p.ReplaceAllString(s, "")
		}
		sentences = append(sentences, s)
	}
	if len(sentences) >= 2 {
		return sentences
	}

	return genericSuggestions
}

// Extracts a string list from a JSON value: a bare array of strings, an
// object with a "suggestions" field, or an object with any array-valued
// field. Returns nil when the value isn't parseable that way.
func suggestionsFromJSON(raw string) []string {
	if !gjson.Valid(raw) {
		return nil
	}
	parsed := gjson.Parse(raw)

	if parsed.IsArray() {
		return stringsFromArray(parsed)
	}
	if parsed.IsObject() {
		if sugg := parsed.Get("suggestions"); sugg.IsArray() {
			return stringsFromArray(sugg)
		}
		var out []string
		parsed.ForEach(func(_, value gjson.Result) bool {
			if value.IsArray() {
				out = stringsFromArray(value)
				return false
			}
			return true
		})
		return out
	}
	return nil
}

func stringsFromArray(arr gjson.Result) []string {
	var out []string
	for _, v := range arr.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Normalizes a raw suggestion list to exactly count items: truncates each to
// the word limit, drops extras, and pads shortfalls with generic fillers.
func FormatSuggestions(suggestions []string, count int) []string {
	if len(suggestions) > count {
		suggestions = suggestions[:count]
	}
	out := make([]string, 0, count)
	for _, s := range suggestions {
		s = strings.TrimSpace(s)
		if s == "" {
			s = "I'd like to hear more about that."
		}
		out = append(out, helpers.TruncateWords(s, maxSuggestionWords))
	}
	for i := 0; len(out) < count; i++ {
		out = append(out, paddingSuggestions[i%len(paddingSuggestions)])
	}
	return out
}
