package rescache

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemResponseCacheBasics(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	c, err := NewMemResponseCache(100)
	require.NoError(err)

	v, ok, err := c.Get(ctx, "room1", "fp1")
	assert.NoError(err)
	assert.False(ok)
	assert.Equal("", v)

	assert.NoError(c.Set(ctx, "room1", "fp1", "a reflection"))
	v, ok, err = c.Get(ctx, "room1", "fp1")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("a reflection", v)

	// partitioned by room
	_, ok, err = c.Get(ctx, "room2", "fp1")
	assert.NoError(err)
	assert.False(ok)

	stats := c.Stats()
	assert.Equal(uint64(1), stats.Hits)
	assert.Equal(uint64(2), stats.Misses)
}

func TestMemResponseCacheEviction(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	c, err := NewMemResponseCache(100)
	require.NoError(err)

	for i := 0; i < 100; i++ {
		require.NoError(c.Set(ctx, "room1", fmt.Sprintf("fp%d", i), "content"))
	}
	assert.Equal(100, c.Len())

	// reads must not refresh recency
	_, ok, _ := c.Get(ctx, "room1", "fp0")
	assert.True(ok)

	// the 101st insert evicts exactly the oldest entry
	require.NoError(c.Set(ctx, "room1", "fp100", "content"))
	assert.Equal(100, c.Len())

	_, ok, _ = c.Get(ctx, "room1", "fp0")
	assert.False(ok)
	_, ok, _ = c.Get(ctx, "room1", "fp1")
	assert.True(ok)
	_, ok, _ = c.Get(ctx, "room1", "fp100")
	assert.True(ok)
}

func TestFingerprint(t *testing.T) {
	assert := assert.New(t)

	a := Fingerprint([]Snippet{
		{Sender: "alice", Content: "hello"},
		{Sender: "bob", Content: "hi there"},
	})
	b := Fingerprint([]Snippet{
		{Sender: "alice", Content: "hello"},
		{Sender: "bob", Content: "hi there"},
	})
	assert.Equal(a, b)

	// only the last 3 messages matter
	c := Fingerprint([]Snippet{
		{Sender: "bob", Content: "way earlier"},
		{Sender: "alice", Content: "hello"},
		{Sender: "alice", Content: "hello"},
		{Sender: "bob", Content: "hi there"},
	})
	d := Fingerprint([]Snippet{
		{Sender: "alice", Content: "hello"},
		{Sender: "alice", Content: "hello"},
		{Sender: "bob", Content: "hi there"},
	})
	assert.Equal(c, d)

	// sender changes the fingerprint; content beyond 50 chars doesn't
	e := Fingerprint([]Snippet{{Sender: "carol", Content: "hello"}})
	assert.NotEqual(Fingerprint([]Snippet{{Sender: "", Content: "hello"}}), e)

	long1 := Fingerprint([]Snippet{{Sender: "a", Content: "0123456789012345678901234567890123456789012345678-SAME-tail-one"}})
	long2 := Fingerprint([]Snippet{{Sender: "a", Content: "0123456789012345678901234567890123456789012345678-SAME-tail-two"}})
	assert.Equal(long1, long2)
}
