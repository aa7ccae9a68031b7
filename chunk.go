package persona

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Chunk represents one stored unit of knowledge about a persona: the plain
// text of a scraped page plus its provenance.
type Chunk struct {
	// ContentHash identifies the chunk within its persona.
	// It is the xxHash of the chunk text, hex encoded.
	ContentHash string `json:"contentHash"`

	// SourceURL is the page the text was scraped from. Informational only;
	// identity is the content hash, so the same text found at two URLs is
	// stored once.
	SourceURL string `json:"sourceUrl"`

	// Text is the extracted plain text.
	Text string `json:"text"`

	// IngestedAt records when the chunk was first stored.
	IngestedAt time.Time `json:"ingestedAt"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "chunk source URL required")
	}
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	return nil
}

// HashContent computes the content hash of text: xxHash of the
// whitespace-trimmed text as a 16-character hex string. Chunks with equal
// trimmed text always hash equal, so re-ingesting a page is a no-op.
func HashContent(text string) string {
	h := xxhash.Sum64String(strings.TrimSpace(text))
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}

// NormalizeName canonicalizes a persona name for storage and lookup:
// lowercased, runs of whitespace collapsed to single underscores, leading
// and trailing whitespace dropped. "Ada Lovelace" and "ada  lovelace"
// normalize to the same persona.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// PersonaStats summarizes a persona's stored knowledge.
type PersonaStats struct {
	Name       string   `json:"name"`
	Exists     bool     `json:"exists"`
	Chunks     int      `json:"chunks"`
	TotalChars int      `json:"totalChars"`
	SourceURLs []string `json:"sourceUrls,omitempty"`
}

// ContentStore persists persona knowledge chunks.
//
// Chunk identity within a persona is the content hash of the text. Put is
// idempotent: storing text whose hash already exists leaves the original
// chunk, including its source URL and timestamp, untouched.
type ContentStore interface {
	// Put stores text scraped from sourceURL under the persona entity.
	// The entity name is normalized before use. Returns the content hash
	// and whether a new chunk was created. Write failures are ESTORAGE.
	Put(ctx context.Context, entity, sourceURL, text string) (hash string, isNew bool, err error)

	// Load returns all chunks for the entity in ingestion order.
	// An unknown entity yields an empty slice, not an error.
	Load(ctx context.Context, entity string) ([]*Chunk, error)

	// Exists reports whether the entity has at least one stored chunk.
	Exists(ctx context.Context, entity string) (bool, error)

	// Stats summarizes the entity's stored knowledge.
	Stats(ctx context.Context, entity string) (*PersonaStats, error)

	// ListEntities returns the normalized names of all stored personas,
	// sorted lexically.
	ListEntities(ctx context.Context) ([]string, error)
}
