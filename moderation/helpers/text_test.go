package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSimilarity(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		a     string
		b     string
		equal bool
	}{
		{a: "ok", b: "ok", equal: true},
		{a: "ok", b: "OK", equal: true},
		{a: "ok", b: "no", equal: false},
		{a: "hey", b: "hello there", equal: false},
	}
	for _, fix := range fixtures {
		if fix.equal {
			assert.Equal(1.0, StringSimilarity(fix.a, fix.b))
		} else {
			assert.Equal(0.0, StringSimilarity(fix.a, fix.b))
		}
	}

	// identical longer strings score 1.0
	assert.Equal(1.0, StringSimilarity("this exact same sentence", "this exact same sentence"))

	// unrelated longer strings score low
	assert.Less(StringSimilarity("qqqqqqqq", "zzzzzzzz"), 0.5)

	// near-identical strings score above the repetition threshold
	assert.GreaterOrEqual(StringSimilarity("i really think so", "i really think so!"), 0.9)
}

func TestHasAggressiveTone(t *testing.T) {
	assert := assert.New(t)

	assert.True(HasAggressiveTone("WHY ARE YOU NOT LISTENING TO ME RIGHT NOW"))
	assert.True(HasAggressiveTone("no way!!!"))
	assert.True(HasAggressiveTone("what? really? seriously? again? why? how?"))
	assert.True(HasAggressiveTone("stop! it! now! please! really!"))
	assert.False(HasAggressiveTone("that's great news!"))
	assert.False(HasAggressiveTone("what do you think?"))
	assert.False(HasAggressiveTone("I think NASA is interesting"))
}

func TestIsFillerWord(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []string{"ok", "OK", "lol", "haha", "yep", " k "} {
		assert.True(IsFillerWord(s), s)
	}
	for _, s := range []string{"okay then", "that's funny", "yes, I agree"} {
		assert.False(IsFillerWord(s), s)
	}
}

func TestContainsDistressSignal(t *testing.T) {
	assert := assert.New(t)

	assert.True(ContainsDistressSignal("honestly I feel attacked here"))
	assert.True(ContainsDistressSignal("please stop"))
	assert.True(ContainsDistressSignal("that is hurtful"))
	assert.False(ContainsDistressSignal("I feel great about this"))
	assert.False(ContainsDistressSignal("tell me more"))
}

func TestTruncateWords(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("one two", TruncateWords("one two", 5))
	assert.Equal("one two three...", TruncateWords("one two three four five", 3))
}

func TestExtractTopics(t *testing.T) {
	assert := assert.New(t)

	topics := ExtractTopics("what draws you to photography these days")
	assert.Contains(topics, "photography")
	assert.Contains(topics, "what")
	assert.NotContains(topics, "you")

	assert.Empty(ExtractTopics("ok"))
}
