package mock

import (
	"context"

	persona "github.com/kvrancic/persona-mcp"
)

var _ persona.ContentStore = (*ContentStore)(nil)

// ContentStore is a mock implementation of persona.ContentStore.
type ContentStore struct {
	PutFn          func(ctx context.Context, entity, sourceURL, text string) (string, bool, error)
	LoadFn         func(ctx context.Context, entity string) ([]*persona.Chunk, error)
	ExistsFn       func(ctx context.Context, entity string) (bool, error)
	StatsFn        func(ctx context.Context, entity string) (*persona.PersonaStats, error)
	ListEntitiesFn func(ctx context.Context) ([]string, error)
}

func (s *ContentStore) Put(ctx context.Context, entity, sourceURL, text string) (string, bool, error) {
	return s.PutFn(ctx, entity, sourceURL, text)
}

func (s *ContentStore) Load(ctx context.Context, entity string) ([]*persona.Chunk, error) {
	return s.LoadFn(ctx, entity)
}

func (s *ContentStore) Exists(ctx context.Context, entity string) (bool, error) {
	return s.ExistsFn(ctx, entity)
}

func (s *ContentStore) Stats(ctx context.Context, entity string) (*persona.PersonaStats, error) {
	return s.StatsFn(ctx, entity)
}

func (s *ContentStore) ListEntities(ctx context.Context) ([]string, error) {
	return s.ListEntitiesFn(ctx)
}
