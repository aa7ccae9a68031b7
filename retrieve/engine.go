// Package retrieve implements keyword retrieval over stored persona chunks.
// Chunks are scored by how many distinct question keywords they contain,
// with a small bonus when the whole question appears verbatim, so grounding
// passages can be selected without any embedding infrastructure.
package retrieve

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	persona "github.com/kvrancic/persona-mcp"
)

// Ensure Engine implements persona.Retriever at compile time.
var _ persona.Retriever = (*Engine)(nil)

// tokenRe matches bare lowercase words of three or more letters.
var tokenRe = regexp.MustCompile(`\b[a-z]{3,}\b`)

// stopwords are excluded from the keyword set.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "day": {}, "get": {}, "has": {}, "him": {},
	"his": {}, "how": {}, "man": {}, "new": {}, "now": {}, "old": {},
	"see": {}, "two": {}, "way": {}, "who": {}, "boy": {}, "did": {},
	"its": {}, "let": {}, "put": {}, "say": {}, "she": {}, "too": {},
	"use": {}, "what": {}, "when": {}, "where": {}, "with": {},
	"that": {}, "this": {}, "have": {}, "from": {}, "they": {},
	"been": {}, "about": {}, "there": {}, "which": {}, "their": {},
	"would": {}, "these": {}, "than": {}, "your": {},
}

// Engine selects grounding chunks for a question by keyword overlap.
type Engine struct {
	store persona.ContentStore
}

// NewEngine creates an Engine reading from store.
func NewEngine(store persona.ContentStore) *Engine {
	return &Engine{store: store}
}

// Keywords extracts the distinct scoring keywords from a question:
// lowercase words of three or more letters, minus stopwords, in first
// appearance order. A question that filters down to nothing falls back to
// the raw token set, so stopword-only questions still retrieve.
func Keywords(question string) []string {
	tokens := tokenRe.FindAllString(strings.ToLower(question), -1)

	seen := make(map[string]struct{})
	var keywords []string
	for _, tok := range tokens {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	if len(keywords) > 0 {
		return keywords
	}

	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	return keywords
}

// Retrieve returns the entity's most relevant chunks for the question,
// best first. Chunks sharing no keyword with the question are never
// returned; when at least one chunk scored, at least one chunk is returned
// even if the size limits would exclude everything.
func (e *Engine) Retrieve(ctx context.Context, entity, question string, opts persona.RetrieveOptions) ([]*persona.Chunk, error) {
	opts = opts.WithDefaults()

	name := persona.NormalizeName(entity)
	if name == "" {
		return nil, persona.Errorf(persona.EINVALID, "persona name required")
	}
	if strings.TrimSpace(question) == "" {
		return nil, persona.Errorf(persona.EINVALID, "question required")
	}

	chunks, err := e.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	keywords := Keywords(question)

	// Trailing sentence punctuation would defeat verbatim matching for
	// almost every real question, so it is not part of the phrase.
	phrase := strings.TrimRight(normalizeSpace(question), "?!.")

	type scoredChunk struct {
		chunk *persona.Chunk
		score float64
	}
	var scored []scoredChunk
	for _, c := range chunks {
		s := scoreChunk(c.Text, keywords, phrase, opts.PhraseBonus)
		if s > 0 {
			scored = append(scored, scoredChunk{chunk: c, score: s})
		}
	}
	if len(scored) == 0 {
		return nil, nil
	}

	// Stable sort keeps store order for equal scores, so earlier-ingested
	// chunks win ties deterministically.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > opts.TopK {
		scored = scored[:opts.TopK]
	}

	// Accumulate whole chunks until the next one would overflow the budget.
	var out []*persona.Chunk
	total := 0
	for _, sc := range scored {
		n := utf8.RuneCountInString(sc.chunk.Text)
		if total+n > opts.MaxContextChars {
			break
		}
		out = append(out, sc.chunk)
		total += n
	}

	// The composer must always have something to ground on.
	if len(out) == 0 {
		out = []*persona.Chunk{scored[0].chunk}
	}
	return out, nil
}

// scoreChunk counts distinct keywords present in the text, each at most
// once, and adds bonus when the whole normalized question appears verbatim.
// A text containing no keyword scores zero regardless of the phrase.
func scoreChunk(text string, keywords []string, phrase string, bonus float64) float64 {
	lower := strings.ToLower(text)

	var score float64
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	if score == 0 {
		return 0
	}

	if phrase != "" && strings.Contains(normalizeSpace(lower), phrase) {
		score += bonus
	}
	return score
}

// normalizeSpace lowercases and collapses all whitespace runs to single
// spaces, so phrase matching is insensitive to line breaks and indentation.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
