package slog

import (
	"context"
	"log/slog"
	"time"

	persona "github.com/kvrancic/persona-mcp"
)

// Ensure LoggingSearchService implements persona.SearchService.
var _ persona.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with debug logging.
type LoggingSearchService struct {
	next   persona.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next persona.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search logs the query and result count and delegates to the wrapped
// service.
func (s *LoggingSearchService) Search(ctx context.Context, query string, limit int) (results []persona.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"limit", limit,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, limit)
}
