package persona

import "context"

// Default retrieval limits.
const (
	DefaultTopK            = 3
	DefaultMaxContextChars = 4000
	DefaultPhraseBonus     = 0.5
)

// RetrieveOptions configures retrieval behavior.
type RetrieveOptions struct {
	// TopK is the maximum number of chunks to return.
	TopK int `json:"topK,omitempty"`

	// MaxContextChars bounds the combined size of returned chunk texts.
	// Chunks are included whole; the first chunk that would overflow the
	// budget stops selection.
	MaxContextChars int `json:"maxContextChars,omitempty"`

	// PhraseBonus is added to a chunk's score when the question appears
	// verbatim in its text. Must stay below 1 so that matching one more
	// keyword always outranks a phrase hit.
	PhraseBonus float64 `json:"phraseBonus,omitempty"`
}

// WithDefaults returns a copy of the options with defaults applied to
// unset fields.
func (o RetrieveOptions) WithDefaults() RetrieveOptions {
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.MaxContextChars <= 0 {
		o.MaxContextChars = DefaultMaxContextChars
	}
	if o.PhraseBonus <= 0 {
		o.PhraseBonus = DefaultPhraseBonus
	}
	return o
}

// Retriever selects stored chunks relevant to a question.
type Retriever interface {
	// Retrieve returns the entity's most relevant chunks for the
	// question, best first, within the option limits. No relevant chunks
	// yields an empty slice, not an error; the caller decides how to
	// answer without grounding.
	Retrieve(ctx context.Context, entity, question string, opts RetrieveOptions) ([]*Chunk, error)
}
