package mock

import (
	"context"

	persona "github.com/kvrancic/persona-mcp"
)

var _ persona.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of persona.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, entity, question string, opts persona.RetrieveOptions) ([]*persona.Chunk, error)
}

func (r *Retriever) Retrieve(ctx context.Context, entity, question string, opts persona.RetrieveOptions) ([]*persona.Chunk, error) {
	return r.RetrieveFn(ctx, entity, question, opts)
}
