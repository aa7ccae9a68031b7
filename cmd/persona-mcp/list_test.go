package main_test

import (
	"bytes"
	"context"
	"testing"

	persona "github.com/kvrancic/persona-mcp"
	main "github.com/kvrancic/persona-mcp/cmd/persona-mcp"
	"github.com/kvrancic/persona-mcp/mem"
	"github.com/kvrancic/persona-mcp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists personas with chunk counts", func(t *testing.T) {
		t.Parallel()

		store := mem.NewStore()
		ctx := context.Background()
		_, _, err := store.Put(ctx, "ada_lovelace", "https://example.com/ada", "The Analytical Engine weaves algebraic patterns.")
		require.NoError(t, err)
		_, _, err = store.Put(ctx, "grace_hopper", "https://example.com/grace", "A ship in port is safe, but that is not what ships are built for.")
		require.NoError(t, err)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    ctx,
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.ListCmd{}

		err = cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "ada_lovelace")
		assert.Contains(t, output, "grace_hopper")
		assert.Contains(t, output, "1 chunks")
	})

	t.Run("shows helpful message when nothing is stored", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  mem.NewStore(),
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No personas stored")
	})

	t.Run("returns error when store fails", func(t *testing.T) {
		t.Parallel()

		store := &mock.ContentStore{
			ListEntitiesFn: func(_ context.Context) ([]string, error) {
				return nil, persona.Errorf(persona.ESTORAGE, "reading knowledge base: permission denied")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "permission denied")
	})
}
