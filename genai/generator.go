// Package genai implements persona.Generator using Google Gemini.
package genai

import (
	"context"
	"strings"

	persona "github.com/kvrancic/persona-mcp"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements persona.Generator at compile time.
var _ persona.Generator = (*Generator)(nil)

// Generator produces persona answers with a Gemini model.
type Generator struct {
	client *genai.Client
	model  string
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel overrides the model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// NewGenerator creates a Generator on an existing Gemini client.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{
		client: client,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs a single blocking completion for the prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", persona.Errorf(persona.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", persona.Errorf(persona.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", persona.Errorf(persona.EGENERATION, "gemini returned an empty answer")
	}

	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You answer as the persona described in the prompt, speaking in the first person. Ground every statement in the provided excerpts. If the excerpts do not cover the question, say so plainly.",
			}},
		},
		Temperature: &temp,
	}
}
