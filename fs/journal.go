package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// journalEntry is one record in metadata.json.
type journalEntry struct {
	SourceURL  string    `json:"source_url"`
	IngestedAt time.Time `json:"ingested_at"`
}

// journal is the per-entity index over chunk bodies. Insertion order is
// persisted as JSON key order, so the type carries an explicit order slice
// instead of relying on Go map iteration.
type journal struct {
	order   []string
	entries map[string]journalEntry
}

func newJournal() *journal {
	return &journal{entries: make(map[string]journalEntry)}
}

// add appends an entry under hash. Returns false without modifying the
// journal if the hash is already present; existing entries win.
func (j *journal) add(hash string, e journalEntry) bool {
	if _, ok := j.entries[hash]; ok {
		return false
	}
	j.entries[hash] = e
	j.order = append(j.order, hash)
	return true
}

func (j *journal) get(hash string) (journalEntry, bool) {
	e, ok := j.entries[hash]
	return e, ok
}

func (j *journal) len() int {
	return len(j.order)
}

// MarshalJSON encodes the journal as a single JSON object whose key order
// is insertion order.
func (j *journal) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, hash := range j.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(hash)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(j.entries[hash])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, recording keys in encounter order.
func (j *journal) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("journal: expected JSON object, got %v", tok)
	}

	j.order = nil
	j.entries = make(map[string]journalEntry)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		hash, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("journal: expected string key, got %v", keyTok)
		}
		var e journalEntry
		if err := dec.Decode(&e); err != nil {
			return fmt.Errorf("journal: entry %q: %w", hash, err)
		}
		j.add(hash, e)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
