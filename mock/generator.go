package mock

import (
	"context"

	persona "github.com/kvrancic/persona-mcp"
)

var _ persona.Generator = (*Generator)(nil)

// Generator is a mock implementation of persona.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}
