package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/veritaslabs/veritas/internal/model"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

// TavilyClient implements Retriever against the Tavily search API. One
// client is constructed at startup and shared read-only by all concurrent
// claim pipelines; net/http.Client supports concurrent use.
type TavilyClient struct {
	apiKey     string
	baseURL    string
	depth      string
	maxResults int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Tavily API structures
type tavilyRequest struct {
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type tavilyResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

type tavilyResponse struct {
	Query   string         `json:"query"`
	Results []tavilyResult `json:"results"`
}

type tavilyError struct {
	Detail struct {
		Error string `json:"error"`
	} `json:"detail"`
}

// NewTavilyClient creates a new Tavily search client
func NewTavilyClient(cfg model.SearchConfig) (*TavilyClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Tavily API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTavilyBaseURL
	}

	depth := cfg.Depth
	if depth == "" {
		depth = "basic"
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 1
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	return &TavilyClient{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		depth:      depth,
		maxResults: maxResults,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Retrieve searches for the claim and returns the top result, or nil when
// the search found nothing.
func (c *TavilyClient) Retrieve(ctx context.Context, claim string) (*model.Evidence, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	apiReq := tavilyRequest{
		Query:       claim,
		SearchDepth: c.depth,
		MaxResults:  c.maxResults,
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/search", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr tavilyError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Detail.Error != "" {
			return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, apiErr.Detail.Error)
		}
		return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp tavilyResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, nil
	}

	// Only the top result is used; shallow single-result search keeps
	// per-claim latency bounded.
	top := resp.Results[0]
	return &model.Evidence{
		Content: top.Content,
		URL:     top.URL,
	}, nil
}
