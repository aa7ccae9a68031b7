// Package scrape turns a URL into clean markdown text by composing a
// fetcher, a blocked-page check, a content extractor, and a markdown
// converter.
package scrape

import (
	"context"
	"fmt"
	"strings"

	persona "github.com/kvrancic/persona-mcp"
)

// Ensure Pipeline implements persona.Scraper at compile time.
var _ persona.Scraper = (*Pipeline)(nil)

// Pipeline implements persona.Scraper. All collaborator fields are
// required except Detector; a nil Detector skips the blocked-page
// check.
type Pipeline struct {
	Fetcher   persona.Fetcher
	Detector  persona.BlockedDetector
	Extractor persona.Extractor
	Converter persona.Converter
}

// Scrape fetches the URL and returns its main content as markdown. The
// caller's context carries the per-page deadline. A bot wall is an
// ordinary EBLOCKED error, never a panic.
func (p *Pipeline) Scrape(ctx context.Context, url string) (string, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if p.Detector != nil {
		if blocked, marker := p.Detector.Detect(html); blocked {
			return "", persona.Errorf(persona.EBLOCKED, "page blocked (%s)", marker)
		}
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(extracted.ContentHTML) == "" {
		return "", fmt.Errorf("no content extracted from %s", url)
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(markdown)

	// Keep the page title when the body lost it: title words are often
	// exactly what retrieval queries ask about.
	if extracted.Title != "" && !strings.HasPrefix(text, "#") {
		text = "# " + extracted.Title + "\n\n" + text
	}

	return text, nil
}
