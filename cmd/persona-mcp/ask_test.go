package main_test

import (
	"bytes"
	"context"
	"testing"

	persona "github.com/kvrancic/persona-mcp"
	main "github.com/kvrancic/persona-mcp/cmd/persona-mcp"
	"github.com/kvrancic/persona-mcp/compose"
	"github.com/kvrancic/persona-mcp/mem"
	"github.com/kvrancic/persona-mcp/mock"
	"github.com/kvrancic/persona-mcp/retrieve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the persona's answer", func(t *testing.T) {
		t.Parallel()

		store := mem.NewStore()
		ctx := context.Background()
		_, _, err := store.Put(ctx, "ada_lovelace", "https://example.com/notes",
			"The Analytical Engine weaves algebraic patterns just as the loom weaves flowers.")
		require.NoError(t, err)

		composer := &compose.Composer{
			Retriever: retrieve.NewEngine(store),
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, prompt string) (string, error) {
					assert.Contains(t, prompt, "You are Ada Lovelace.")
					return "I see the Engine as a loom for algebra.", nil
				},
			},
			Store: store,
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      ctx,
			Stdout:   stdout,
			Stderr:   stderr,
			Store:    store,
			Composer: composer,
		}

		cmd := &main.AskCmd{Person: "Ada Lovelace", Question: "What does the Engine weave?"}

		err = cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "I see the Engine as a loom for algebra.")
		assert.Empty(t, stderr.String())
	})

	t.Run("suggests list when persona not found", func(t *testing.T) {
		t.Parallel()

		store := mem.NewStore()
		composer := &compose.Composer{
			Retriever: retrieve.NewEngine(store),
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, prompt string) (string, error) {
					t.Fatal("generator must not be called for an unknown persona")
					return "", nil
				},
			},
			Store: store,
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Store:    store,
			Composer: composer,
		}

		cmd := &main.AskCmd{Person: "Grace Hopper", Question: "Anything?"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, persona.ENOTFOUND, persona.ErrorCode(err))
		assert.Contains(t, stderr.String(), "persona-mcp list")
		assert.Empty(t, stdout.String())
	})

	t.Run("answers without grounding when nothing relevant is stored", func(t *testing.T) {
		t.Parallel()

		store := mem.NewStore()
		ctx := context.Background()
		_, _, err := store.Put(ctx, "ada_lovelace", "https://example.com/notes",
			"The Analytical Engine weaves algebraic patterns.")
		require.NoError(t, err)

		composer := &compose.Composer{
			Retriever: retrieve.NewEngine(store),
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, prompt string) (string, error) {
					t.Fatal("generator must not be called without grounding")
					return "", nil
				},
			},
			Store: store,
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      ctx,
			Stdout:   stdout,
			Stderr:   stderr,
			Store:    store,
			Composer: composer,
		}

		cmd := &main.AskCmd{Person: "Ada Lovelace", Question: "Favourite seaside resort?"}

		err = cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "haven't publicly said anything")
	})
}
