package persona

import "context"

// Generator produces a language model completion for a fully formed prompt.
type Generator interface {
	// Generate sends the prompt and returns the model's text response.
	// Failures are EGENERATION.
	Generate(ctx context.Context, prompt string) (string, error)
}
