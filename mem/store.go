// Package mem provides an in-memory persona.ContentStore. It backs tests
// and ephemeral runs where nothing should touch the filesystem.
package mem

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	persona "github.com/kvrancic/persona-mcp"
)

// Ensure Store implements persona.ContentStore at compile time.
var _ persona.ContentStore = (*Store)(nil)

// Store holds persona chunks in memory. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	entities map[string]*entity
}

type entity struct {
	order  []string
	chunks map[string]*persona.Chunk
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{entities: make(map[string]*entity)}
}

// Put stores text under the entity, deduplicating by content hash.
func (s *Store) Put(ctx context.Context, name, sourceURL, text string) (string, bool, error) {
	key := persona.NormalizeName(name)
	if key == "" {
		return "", false, persona.Errorf(persona.EINVALID, "persona name required")
	}
	if sourceURL == "" {
		return "", false, persona.Errorf(persona.EINVALID, "source URL required")
	}
	body := strings.TrimSpace(text)
	if body == "" {
		return "", false, persona.Errorf(persona.EINVALID, "chunk text required")
	}

	hash := persona.HashContent(body)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities[key]
	if !ok {
		e = &entity{chunks: make(map[string]*persona.Chunk)}
		s.entities[key] = e
	}
	if _, ok := e.chunks[hash]; ok {
		return hash, false, nil
	}

	e.chunks[hash] = &persona.Chunk{
		ContentHash: hash,
		SourceURL:   sourceURL,
		Text:        body,
		IngestedAt:  time.Now().UTC(),
	}
	e.order = append(e.order, hash)
	return hash, true, nil
}

// Load returns the entity's chunks in insertion order.
func (s *Store) Load(ctx context.Context, name string) ([]*persona.Chunk, error) {
	key := persona.NormalizeName(name)
	if key == "" {
		return nil, persona.Errorf(persona.EINVALID, "persona name required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[key]
	if !ok {
		return []*persona.Chunk{}, nil
	}

	chunks := make([]*persona.Chunk, 0, len(e.order))
	for _, hash := range e.order {
		c := *e.chunks[hash] // copy so callers can't mutate the store
		chunks = append(chunks, &c)
	}
	return chunks, nil
}

// Exists reports whether the entity has at least one stored chunk.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	key := persona.NormalizeName(name)
	if key == "" {
		return false, persona.Errorf(persona.EINVALID, "persona name required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[key]
	return ok && len(e.order) > 0, nil
}

// Stats summarizes the entity's stored knowledge.
func (s *Store) Stats(ctx context.Context, name string) (*persona.PersonaStats, error) {
	key := persona.NormalizeName(name)
	if key == "" {
		return nil, persona.Errorf(persona.EINVALID, "persona name required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &persona.PersonaStats{Name: key}
	e, ok := s.entities[key]
	if !ok {
		return stats, nil
	}

	stats.Exists = len(e.order) > 0
	stats.Chunks = len(e.order)
	seen := make(map[string]bool)
	for _, hash := range e.order {
		c := e.chunks[hash]
		stats.TotalChars += utf8.RuneCountInString(c.Text)
		if !seen[c.SourceURL] {
			seen[c.SourceURL] = true
			stats.SourceURLs = append(stats.SourceURLs, c.SourceURL)
		}
	}
	return stats, nil
}

// ListEntities returns all persona names with stored chunks, sorted.
func (s *Store) ListEntities(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for key, e := range s.entities {
		if len(e.order) > 0 {
			names = append(names, key)
		}
	}
	slices.Sort(names)
	return names, nil
}
