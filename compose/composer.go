// Package compose builds grounded persona answers. It resolves which
// persona a question targets, retrieves grounding passages, and asks the
// language model to answer in the persona's first-person voice using only
// those passages.
package compose

import (
	"context"
	"fmt"
	"strings"

	persona "github.com/kvrancic/persona-mcp"
)

// Composer answers questions in a persona's voice.
type Composer struct {
	Retriever persona.Retriever
	Generator persona.Generator
	Store     persona.ContentStore

	// Options bounds retrieval; zero values use the package defaults.
	Options persona.RetrieveOptions
}

// Answer answers a question as the persona named by name, or by the
// session's active persona when name is empty.
//
// An empty retrieval produces a fixed reply saying nothing is on record;
// the language model is never called without grounding.
func (c *Composer) Answer(ctx context.Context, sess *persona.Session, name, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", persona.Errorf(persona.EINVALID, "question required")
	}

	entity := persona.NormalizeName(name)
	if entity == "" {
		if sess == nil {
			return "", persona.Errorf(persona.ENOPERSONA, "no active persona; initialize one first")
		}
		active, ok := sess.Active()
		if !ok {
			return "", persona.Errorf(persona.ENOPERSONA, "no active persona; initialize one first")
		}
		entity = active
	} else {
		ok, err := c.Store.Exists(ctx, entity)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", persona.Errorf(persona.ENOTFOUND, "persona %q not found", entity)
		}
	}

	chunks, err := c.Retriever.Retrieve(ctx, entity, question, c.Options)
	if err != nil {
		return "", err
	}
	if len(chunks) == 0 {
		return NoGroundingReply(), nil
	}

	prompt := BuildPrompt(entity, chunks, question)
	answer, err := c.Generator.Generate(ctx, prompt)
	if err != nil {
		return "", persona.Errorf(persona.EGENERATION, "generating answer: %s", persona.ErrorMessage(err))
	}
	return answer, nil
}

// NoGroundingReply is the fixed first-person reply used when retrieval
// finds nothing relevant.
func NoGroundingReply() string {
	return "I haven't publicly said anything about that. Nothing in my stored statements touches on this question."
}

// BuildPrompt builds the grounded persona prompt: first-person framing,
// the retrieved excerpts verbatim with their sources, then the question.
func BuildPrompt(entity string, chunks []*persona.Chunk, question string) string {
	display := persona.DisplayName(entity)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s. Speak in the first person, as yourself; never refer to %s in the third person.\n\n", display, display)
	sb.WriteString("The excerpts below are your own public statements and writings. Answer the question using only what they contain. ")
	sb.WriteString("If they don't cover it, say in your own voice that you haven't publicly spoken about it.\n\n")
	sb.WriteString("<excerpts>\n")
	for i, c := range chunks {
		sb.WriteString("<excerpt>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<source>%s</source>\n", c.SourceURL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", c.Text)
		sb.WriteString("</excerpt>\n")
	}
	sb.WriteString("</excerpts>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
