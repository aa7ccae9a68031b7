package mock

import persona "github.com/kvrancic/persona-mcp"

var _ persona.Converter = (*Converter)(nil)

// Converter is a mock implementation of persona.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
