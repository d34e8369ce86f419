package completion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSuggestionsStrategies(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		name    string
		content string
		out     []string
	}{
		{
			name:    "json fence",
			content: "```json\n[\"first idea\", \"second idea\"]\n```",
			out:     []string{"first idea", "second idea"},
		},
		{
			name:    "generic fence",
			content: "```\n[\"one\", \"two\"]\n```",
			out:     []string{"one", "two"},
		},
		{
			name:    "bare array",
			content: `["alpha", "beta"]`,
			out:     []string{"alpha", "beta"},
		},
		{
			name:    "object with suggestions field",
			content: `{"suggestions": ["red", "blue"]}`,
			out:     []string{"red", "blue"},
		},
		{
			name:    "object with any array field",
			content: `{"ideas": ["up", "down"]}`,
			out:     []string{"up", "down"},
		},
		{
			name:    "quoted strings in prose",
			content: `Here are two ideas: "ask about travel" and also "mention the book".`,
			out:     []string{"ask about travel", "mention the book"},
		},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, ParseSuggestions(fix.content), fix.name)
	}
}

func TestParseSuggestionsSentenceFallback(t *testing.T) {
	assert := assert.New(t)

	out := ParseSuggestions("I would suggest asking about their weekend. Perhaps mention the hiking trip.")
	assert.Len(out, 2)
	assert.Equal("asking about their weekend", out[0])
	assert.Equal("mention the hiking trip", out[1])
}

func TestParseSuggestionsGenericFallback(t *testing.T) {
	assert := assert.New(t)

	out := ParseSuggestions("hm")
	assert.Equal(genericSuggestions, out)
}

func TestFormatSuggestionsExactCount(t *testing.T) {
	assert := assert.New(t)

	// over-long list truncated to exactly the requested count
	out := FormatSuggestions([]string{"a suggestion", "another one", "a third"}, 2)
	assert.Len(out, 2)
	assert.Equal("a suggestion", out[0])

	// short list padded to exactly the requested count
	out = FormatSuggestions([]string{"only one"}, 2)
	assert.Len(out, 2)
	assert.Equal("only one", out[0])
	assert.Equal(paddingSuggestions[0], out[1])

	// empty input still yields the requested count
	out = FormatSuggestions(nil, 2)
	assert.Len(out, 2)
}

func TestFormatSuggestionsWordLimit(t *testing.T) {
	assert := assert.New(t)

	long := strings.Repeat("word ", 30)
	out := FormatSuggestions([]string{long}, 1)
	assert.Len(out, 1)
	assert.Len(strings.Fields(strings.TrimSuffix(out[0], "...")), 20)
	assert.True(strings.HasSuffix(out[0], "..."))
}
