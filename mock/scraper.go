package mock

import (
	"context"

	persona "github.com/kvrancic/persona-mcp"
)

var _ persona.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of persona.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (string, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (string, error) {
	return s.ScrapeFn(ctx, url)
}
