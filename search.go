package persona

import (
	"context"
	"fmt"
)

// SearchResult represents one web search hit.
type SearchResult struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// PersonQueries expands a person's name into the searches used to find
// pages carrying their own words rather than generic biography.
func PersonQueries(name string) []string {
	return []string{
		fmt.Sprintf("\"%s\" interview", name),
		fmt.Sprintf("\"%s\" quotes", name),
		fmt.Sprintf("\"%s\" blog", name),
		fmt.Sprintf("\"%s\" opinions", name),
	}
}

// SearchService finds candidate pages about a subject on the public web.
type SearchService interface {
	// Search returns up to limit results for the query, deduplicated by
	// URL, most relevant first. An unreachable or misconfigured backend
	// is ESEARCH; a reachable backend with nothing to return yields an
	// empty slice and no error.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
