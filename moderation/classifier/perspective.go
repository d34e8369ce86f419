package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

const defaultAnalyzeURL = "https://commentanalyzer.googleapis.com/v1alpha1/comments:analyze"

// PerspectiveClient scores text with the Comment Analyzer API. Any failure
// (network, HTTP status, malformed body) degrades to FallbackAnalyze; the
// returned Result is tagged so callers know which path produced it.
type PerspectiveClient struct {
	APIKey     string
	AnalyzeURL string
	Logger     *slog.Logger

	client  *retryablehttp.Client
	limiter *rate.Limiter
}

// requestsPerSecond bounds outbound calls to the scoring service; the free
// tier quota is 1 QPS.
func NewPerspectiveClient(apiKey string, requestsPerSecond int, logger *slog.Logger) *PerspectiveClient {
	if logger == nil {
		logger = slog.Default()
	}
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 200 * time.Millisecond
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil
	return &PerspectiveClient{
		APIKey:     apiKey,
		AnalyzeURL: defaultAnalyzeURL,
		Logger:     logger,
		client:     client,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

type analyzeRequest struct {
	Comment             analyzeComment               `json:"comment"`
	RequestedAttributes map[string]map[string]any    `json:"requestedAttributes"`
	Languages           []string                     `json:"languages"`
	DoNotStore          bool                         `json:"doNotStore"`
}

type analyzeComment struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	AttributeScores map[string]struct {
		SummaryScore struct {
			Value float64 `json:"value"`
		} `json:"summaryScore"`
	} `json:"attributeScores"`
}

func (c *PerspectiveClient) AnalyzeText(ctx context.Context, text string) (*Result, error) {
	return c.AnalyzeAttributes(ctx, text, DefaultAttributes)
}

func (c *PerspectiveClient) AnalyzeAttributes(ctx context.Context, text string, attributes []string) (*Result, error) {
	if len(text) == 0 {
		return &Result{Scores: map[string]float64{}}, nil
	}
	if c.APIKey == "" {
		return FallbackAnalyze(text, attributes), nil
	}

	res, err := c.analyze(ctx, text, attributes)
	if err != nil {
		classifierFallbackCount.Inc()
		c.Logger.Warn("comment analysis failed, using pattern fallback", "err", err)
		return FallbackAnalyze(text, attributes), nil
	}
	classifierRequestCount.Inc()
	return res, nil
}

func (c *PerspectiveClient) analyze(ctx context.Context, text string, attributes []string) (*Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqAttrs := make(map[string]map[string]any, len(attributes))
	for _, attr := range attributes {
		reqAttrs[attr] = map[string]any{}
	}
	body, err := json.Marshal(analyzeRequest{
		Comment:             analyzeComment{Text: text},
		RequestedAttributes: reqAttrs,
		Languages:           []string{"en"},
		DoNotStore:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding analyze request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.AnalyzeURL+"?key="+c.APIKey, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("comment analysis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("comment analysis non-200 status: %d", resp.StatusCode)
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding analyze response: %w", err)
	}

	scores := make(map[string]float64, len(parsed.AttributeScores))
	for attr, v := range parsed.AttributeScores {
		scores[attr] = v.SummaryScore.Value
	}
	return &Result{Scores: scores}, nil
}
