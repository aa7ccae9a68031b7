// Package serper implements persona.SearchService on top of the Serper
// REST API (https://serper.dev).
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/bloom"
)

const (
	// DefaultBaseURL is the Serper search endpoint.
	DefaultBaseURL = "https://google.serper.dev/search"

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 10 * time.Second

	// DefaultLimit is used when the caller passes a non-positive limit.
	DefaultLimit = 10

	dedupeExpectedURLs      = 1000
	dedupeFalsePositiveRate = 0.01
)

// Ensure Client implements the interface.
var _ persona.SearchService = (*Client)(nil)

// Client searches the web through the Serper API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Useful for testing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a Serper-backed search service.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchRequest is the body for Serper's search endpoint.
type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// searchResponse is the subset of Serper's response we consume.
type searchResponse struct {
	Organic []organicResult `json:"organic"`
}

type organicResult struct {
	Link    string `json:"link"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Search runs the person-focused query expansion against Serper and
// returns up to limit deduplicated results in discovery order. Any
// request failing fails the whole search; a quietly empty result set
// would be indistinguishable from a bad API key.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]persona.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, persona.Errorf(persona.EINVALID, "search query is required")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	queries := persona.PersonQueries(query)

	// Distribute the limit across the expanded queries.
	perQuery := limit/len(queries) + 1

	seen := bloom.NewSet(dedupeExpectedURLs, dedupeFalsePositiveRate)
	results := make([]persona.SearchResult, 0, limit)

	for _, q := range queries {
		organic, err := c.search(ctx, q, perQuery)
		if err != nil {
			return nil, err
		}
		for _, r := range organic {
			if r.Link == "" {
				continue
			}
			if !seen.Add(r.Link) {
				continue
			}
			results = append(results, persona.SearchResult{
				URL:     r.Link,
				Title:   r.Title,
				Snippet: r.Snippet,
			})
			if len(results) == limit {
				return results, nil
			}
		}
	}

	return results, nil
}

// search runs a single query against the API.
func (c *Client) search(ctx context.Context, query string, num int) ([]organicResult, error) {
	body, err := json.Marshal(searchRequest{Q: query, Num: num})
	if err != nil {
		return nil, persona.Errorf(persona.EINTERNAL, "marshaling search request: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, persona.Errorf(persona.ESEARCH, "creating search request: %s", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, persona.Errorf(persona.ESEARCH, "searching %q: %s", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, persona.Errorf(persona.ESEARCH, "serper returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, persona.Errorf(persona.ESEARCH, "decoding search response: %s", err)
	}

	return parsed.Organic, nil
}
