//go:build integration

package genai_test

import (
	"context"
	"os"
	"testing"
	"time"

	personagenai "github.com/kvrancic/persona-mcp/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGenerator_Integration_ReturnsAnswer(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	gen := personagenai.NewGenerator(client)

	answer, err := gen.Generate(ctx, `You are Ada Lovelace. Speak in the first person.

<excerpts>
<excerpt>
<index>1</index>
<source>https://example.com/notes</source>
<content>The Analytical Engine weaves algebraic patterns just as the Jacquard loom weaves flowers and leaves.</content>
</excerpt>
</excerpts>

Question: What does the Analytical Engine do?`)

	require.NoError(t, err)
	assert.NotEmpty(t, answer)
}
