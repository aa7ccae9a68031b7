package slog

import (
	"context"
	"log/slog"
	"time"

	persona "github.com/kvrancic/persona-mcp"
)

// Ensure LoggingContentStore implements persona.ContentStore.
var _ persona.ContentStore = (*LoggingContentStore)(nil)

// LoggingContentStore wraps a ContentStore with debug logging on the
// write and read paths. Metadata lookups delegate silently.
type LoggingContentStore struct {
	next   persona.ContentStore
	logger *slog.Logger
}

// NewLoggingContentStore creates a new LoggingContentStore.
func NewLoggingContentStore(next persona.ContentStore, logger *slog.Logger) *LoggingContentStore {
	return &LoggingContentStore{next: next, logger: logger}
}

// Put logs the entity, content hash, and dedup outcome.
func (s *LoggingContentStore) Put(ctx context.Context, entity, sourceURL, text string) (hash string, isNew bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("store put",
			"entity", entity,
			"url", sourceURL,
			"hash", hash,
			"new", isNew,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Put(ctx, entity, sourceURL, text)
}

// Load logs the entity and chunk count.
func (s *LoggingContentStore) Load(ctx context.Context, entity string) (chunks []*persona.Chunk, err error) {
	defer func(begin time.Time) {
		s.logger.Info("store load",
			"entity", entity,
			"chunks", len(chunks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, entity)
}

// Exists delegates to the wrapped store.
func (s *LoggingContentStore) Exists(ctx context.Context, entity string) (bool, error) {
	return s.next.Exists(ctx, entity)
}

// Stats delegates to the wrapped store.
func (s *LoggingContentStore) Stats(ctx context.Context, entity string) (*persona.PersonaStats, error) {
	return s.next.Stats(ctx, entity)
}

// ListEntities delegates to the wrapped store.
func (s *LoggingContentStore) ListEntities(ctx context.Context) ([]string, error) {
	return s.next.ListEntities(ctx)
}
