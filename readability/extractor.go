// Package readability extracts the main article content from scraped
// pages using Mozilla's readability heuristics. It is an alternative to
// the trafilatura extractor for deployments that prefer its output.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	persona "github.com/kvrancic/persona-mcp"
)

// Ensure Extractor implements persona.Extractor at compile time.
var _ persona.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*persona.ExtractResult, error) {
	if rawHTML == "" {
		return nil, persona.Errorf(persona.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &persona.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
