package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	persona "github.com/kvrancic/persona-mcp"
)

// Ensure LoggingScraper implements persona.Scraper.
var _ persona.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging.
type LoggingScraper struct {
	next   persona.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next persona.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape logs the URL and extracted size and delegates to the wrapped
// scraper.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scrape",
			"url", url,
			"chars", utf8.RuneCountInString(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
