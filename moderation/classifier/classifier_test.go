package classifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultAbove(t *testing.T) {
	assert := assert.New(t)

	res := &Result{Scores: map[string]float64{
		AttrToxicity: 0.85,
		AttrThreat:   0.4,
	}}
	assert.True(res.Above(AttrToxicity, 0.8))
	assert.False(res.Above(AttrThreat, 0.8))
	assert.False(res.Above(AttrIdentityAttack, 0.8))

	var nilRes *Result
	assert.False(nilRes.Above(AttrToxicity, 0.8))
}

func TestFallbackAnalyze(t *testing.T) {
	assert := assert.New(t)

	res := FallbackAnalyze("you are an idiot and a moron, shut up", DefaultAttributes)
	assert.True(res.Fallback)
	assert.InDelta(0.9, res.Scores[AttrInsult], 0.001)
	assert.Equal(0.0, res.Scores[AttrSevereToxicity])

	res = FallbackAnalyze("such a nice day", DefaultAttributes)
	for _, attr := range DefaultAttributes {
		assert.Equal(0.0, res.Scores[attr], attr)
	}

	// score caps at 1.0
	res = FallbackAnalyze("idiot stupid dumb moron loser pathetic worthless", DefaultAttributes)
	assert.Equal(1.0, res.Scores[AttrInsult])
}

func TestContainsProfanity(t *testing.T) {
	assert := assert.New(t)

	assert.True(ContainsProfanity("well FUCK that"))
	assert.True(ContainsProfanity("damn right"))
	assert.False(ContainsProfanity("completely fine message"))
}

func TestPatternClassifierEmptyText(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	c := &PatternClassifier{}
	res, err := c.AnalyzeText(ctx, "")
	assert.NoError(err)
	assert.NotNil(res)
	assert.Empty(res.Scores)
}

func TestPerspectiveClientSuccess(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		require.NoError(json.NewDecoder(r.Body).Decode(&req))
		assert.Equal("some text", req.Comment.Text)
		assert.True(req.DoNotStore)

		resp := map[string]any{
			"attributeScores": map[string]any{
				AttrToxicity: map[string]any{
					"summaryScore": map[string]any{"value": 0.91},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewPerspectiveClient("test-key", 100, slog.Default())
	c.AnalyzeURL = srv.URL

	res, err := c.AnalyzeText(ctx, "some text")
	require.NoError(err)
	assert.False(res.Fallback)
	assert.InDelta(0.91, res.Scores[AttrToxicity], 0.001)
}

func TestPerspectiveClientFallsBackOnError(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewPerspectiveClient("bad-key", 100, slog.Default())
	c.AnalyzeURL = srv.URL

	res, err := c.AnalyzeText(ctx, "you are an idiot")
	require.NoError(err)
	assert.True(res.Fallback)
	assert.Greater(res.Scores[AttrInsult], 0.0)
}

func TestPerspectiveClientNoKeyUsesFallback(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	c := NewPerspectiveClient("", 100, slog.Default())
	res, err := c.AnalyzeText(ctx, "kill you")
	assert.NoError(err)
	assert.True(res.Fallback)
	assert.Greater(res.Scores[AttrThreat], 0.0)
}
