package mock

import (
	"context"

	persona "github.com/kvrancic/persona-mcp"
)

var _ persona.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of persona.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]persona.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]persona.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}
