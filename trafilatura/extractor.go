// Package trafilatura extracts the main article content from scraped
// pages, dropping navigation, ads, and other boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements persona.Extractor at compile time.
var _ persona.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The fallback
// chain (readability, dom-distiller) is enabled so oddly structured
// pages still yield something.
func (e *Extractor) Extract(rawHTML string) (*persona.ExtractResult, error) {
	if rawHTML == "" {
		return nil, persona.Errorf(persona.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &persona.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
