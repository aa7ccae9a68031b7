// Package googlecse implements persona.SearchService on Google's
// Programmable Search Engine (customsearch/v1). It is the drop-in
// alternative to the serper backend for deployments with Google API
// credentials.
package googlecse

import (
	"context"
	"strings"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/bloom"
	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

const (
	// DefaultLimit is used when the caller passes a non-positive limit.
	DefaultLimit = 10

	// maxPageSize is the API's cap on results per request.
	maxPageSize = 10

	dedupeExpectedURLs      = 1000
	dedupeFalsePositiveRate = 0.01
)

// Ensure Client implements the interface.
var _ persona.SearchService = (*Client)(nil)

// Client searches the web through a Programmable Search Engine.
type Client struct {
	svc      *customsearch.Service
	engineID string
}

// NewClient creates a search service backed by the given API key and
// search engine ID. Extra options are passed through to the underlying
// API client.
func NewClient(ctx context.Context, apiKey, engineID string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, persona.Errorf(persona.EINVALID, "google api key is required")
	}
	if engineID == "" {
		return nil, persona.Errorf(persona.EINVALID, "search engine id is required")
	}

	svc, err := customsearch.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, persona.Errorf(persona.ESEARCH, "creating customsearch service: %s", err)
	}

	return &Client{svc: svc, engineID: engineID}, nil
}

// Search runs the person-focused query expansion against the engine and
// returns up to limit deduplicated results in discovery order.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]persona.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, persona.Errorf(persona.EINVALID, "search query is required")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	queries := persona.PersonQueries(query)

	perQuery := limit/len(queries) + 1
	if perQuery > maxPageSize {
		perQuery = maxPageSize
	}

	seen := bloom.NewSet(dedupeExpectedURLs, dedupeFalsePositiveRate)
	results := make([]persona.SearchResult, 0, limit)

	for _, q := range queries {
		resp, err := c.svc.Cse.List().Q(q).Cx(c.engineID).Num(int64(perQuery)).Context(ctx).Do()
		if err != nil {
			return nil, persona.Errorf(persona.ESEARCH, "searching %q: %s", q, err)
		}
		for _, item := range resp.Items {
			if item == nil || item.Link == "" {
				continue
			}
			if !seen.Add(item.Link) {
				continue
			}
			results = append(results, persona.SearchResult{
				URL:     item.Link,
				Title:   item.Title,
				Snippet: item.Snippet,
			})
			if len(results) == limit {
				return results, nil
			}
		}
	}

	return results, nil
}
