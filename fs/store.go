// Package fs provides file-backed persona knowledge storage.
//
// The on-disk layout, one directory per persona:
//
//	<root>/knowledge_base/<entity>/content/<hash>.txt
//	<root>/knowledge_base/<entity>/metadata.json
//
// Chunk bodies are plain text files named by content hash. metadata.json is
// the journal: a JSON object mapping hash to source URL and ingestion time,
// with key order recording ingestion order.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	persona "github.com/kvrancic/persona-mcp"
)

// Names that make up the on-disk layout.
const (
	baseDirName     = "knowledge_base"
	contentDirName  = "content"
	journalFileName = "metadata.json"
)

// Ensure Store implements persona.ContentStore at compile time.
var _ persona.ContentStore = (*Store)(nil)

// Store persists persona chunks as plain files.
//
// Writers of the same entity are serialized by a per-entity mutex; the
// journal file is replaced atomically, and chunk bodies are written before
// the journal references them, so readers never observe a journal entry
// whose body is missing.
type Store struct {
	root string

	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex
}

// NewStore creates a Store rooted at dir. The knowledge_base directory is
// created lazily on first write.
func NewStore(dir string) *Store {
	return &Store{
		root:  dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// entityLock returns the mutex serializing writers of one entity.
func (s *Store) entityLock(entity string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[entity]
	if !ok {
		l = &sync.Mutex{}
		s.locks[entity] = l
	}
	return l
}

func (s *Store) entityDir(entity string) string {
	return filepath.Join(s.root, baseDirName, entity)
}

// Put stores text scraped from sourceURL under the entity. The text is
// whitespace-trimmed before hashing and storage. When the entity already
// holds a chunk with the same hash, nothing is written and the original
// journal entry is kept.
func (s *Store) Put(ctx context.Context, entity, sourceURL, text string) (string, bool, error) {
	name := persona.NormalizeName(entity)
	if name == "" {
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

	lock := s.entityLock(name)
	lock.Lock()
	defer lock.Unlock()

	j, err := s.readJournal(name)
	if err != nil {
		return "", false, err
	}
	if _, ok := j.get(hash); ok {
		return hash, false, nil
	}

	// Body first, journal second. A crash between the two leaves an
	// orphan body that a later identical Put silently reuses; the journal
	// never references a missing body.
	contentDir := filepath.Join(s.entityDir(name), contentDirName)
	if err := os.MkdirAll(contentDir, 0755); err != nil {
		return "", false, persona.Errorf(persona.ESTORAGE, "creating content directory: %s", err)
	}
	bodyPath := filepath.Join(contentDir, hash+".txt")
	if err := os.WriteFile(bodyPath, []byte(body), 0644); err != nil {
		return "", false, persona.Errorf(persona.ESTORAGE, "writing chunk body: %s", err)
	}

	j.add(hash, journalEntry{
		SourceURL:  sourceURL,
		IngestedAt: time.Now().UTC(),
	})
	if err := s.writeJournal(name, j); err != nil {
		return "", false, err
	}

	return hash, true, nil
}

// Load returns all chunks for the entity in journal order.
func (s *Store) Load(ctx context.Context, entity string) ([]*persona.Chunk, error) {
	name := persona.NormalizeName(entity)
	if name == "" {
		return nil, persona.Errorf(persona.EINVALID, "persona name required")
	}

	j, err := s.readJournal(name)
	if err != nil {
		return nil, err
	}

	chunks := make([]*persona.Chunk, 0, j.len())
	for _, hash := range j.order {
		e := j.entries[hash]
		body, err := os.ReadFile(filepath.Join(s.entityDir(name), contentDirName, hash+".txt"))
		if err != nil {
			return nil, persona.Errorf(persona.ESTORAGE, "reading chunk %s: %s", hash, err)
		}
		chunks = append(chunks, &persona.Chunk{
			ContentHash: hash,
			SourceURL:   e.SourceURL,
			Text:        string(body),
			IngestedAt:  e.IngestedAt,
		})
	}
	return chunks, nil
}

// Exists reports whether the entity has at least one stored chunk.
func (s *Store) Exists(ctx context.Context, entity string) (bool, error) {
	name := persona.NormalizeName(entity)
	if name == "" {
		return false, persona.Errorf(persona.EINVALID, "persona name required")
	}

	j, err := s.readJournal(name)
	if err != nil {
		return false, err
	}
	return j.len() > 0, nil
}

// Stats summarizes the entity's stored knowledge.
func (s *Store) Stats(ctx context.Context, entity string) (*persona.PersonaStats, error) {
	name := persona.NormalizeName(entity)
	if name == "" {
		return nil, persona.Errorf(persona.EINVALID, "persona name required")
	}

	chunks, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	stats := &persona.PersonaStats{
		Name:   name,
		Exists: len(chunks) > 0,
		Chunks: len(chunks),
	}
	seen := make(map[string]bool)
	for _, c := range chunks {
		stats.TotalChars += utf8.RuneCountInString(c.Text)
		if !seen[c.SourceURL] {
			seen[c.SourceURL] = true
			stats.SourceURLs = append(stats.SourceURLs, c.SourceURL)
		}
	}
	return stats, nil
}

// ListEntities returns the normalized names of all personas that hold at
// least one chunk, sorted lexically.
func (s *Store) ListEntities(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, baseDirName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, persona.Errorf(persona.ESTORAGE, "listing knowledge base: %s", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		j, err := s.readJournal(e.Name())
		if err != nil {
			return nil, err
		}
		if j.len() > 0 {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// readJournal loads the entity's journal. A missing journal file is an
// empty journal, not an error.
func (s *Store) readJournal(entity string) (*journal, error) {
	data, err := os.ReadFile(filepath.Join(s.entityDir(entity), journalFileName))
	if errors.Is(err, os.ErrNotExist) {
		return newJournal(), nil
	} else if err != nil {
		return nil, persona.Errorf(persona.ESTORAGE, "reading journal: %s", err)
	}

	j := newJournal()
	if err := json.Unmarshal(data, j); err != nil {
		return nil, persona.Errorf(persona.ESTORAGE, "parsing journal for %q: %s", entity, err)
	}
	return j, nil
}

// writeJournal replaces the entity's journal atomically via temp file and
// rename.
func (s *Store) writeJournal(entity string, j *journal) error {
	data, err := json.Marshal(j)
	if err != nil {
		return persona.Errorf(persona.ESTORAGE, "encoding journal: %s", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return persona.Errorf(persona.ESTORAGE, "encoding journal: %s", err)
	}

	dir := s.entityDir(entity)
	tmp := filepath.Join(dir, journalFileName+".tmp")
	if err := os.WriteFile(tmp, pretty.Bytes(), 0644); err != nil {
		return persona.Errorf(persona.ESTORAGE, "writing journal: %s", err)
	}
	if err := os.Rename(tmp, filepath.Join(dir, journalFileName)); err != nil {
		return persona.Errorf(persona.ESTORAGE, "replacing journal: %s", err)
	}
	return nil
}
