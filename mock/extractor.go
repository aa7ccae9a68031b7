package mock

import persona "github.com/kvrancic/persona-mcp"

var _ persona.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of persona.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*persona.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*persona.ExtractResult, error) {
	return e.ExtractFn(html)
}
