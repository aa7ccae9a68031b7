package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/mock"
	personaslog "github.com/kvrancic/persona-mcp/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingContentStore(t *testing.T) {
	t.Parallel()

	t.Run("logs put with hash and dedup outcome", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentStore{
			PutFn: func(ctx context.Context, entity, sourceURL, text string) (string, bool, error) {
				return "deadbeefdeadbeef", true, nil
			},
		}

		store := personaslog.NewLoggingContentStore(inner, logger)
		hash, isNew, err := store.Put(context.Background(), "ada_lovelace", "https://example.com/a", "text")

		require.NoError(t, err)
		assert.Equal(t, "deadbeefdeadbeef", hash)
		assert.True(t, isNew)
		output := buf.String()
		assert.Contains(t, output, "store put")
		assert.Contains(t, output, "entity=ada_lovelace")
		assert.Contains(t, output, "hash=deadbeefdeadbeef")
		assert.Contains(t, output, "new=true")
	})

	t.Run("logs load with chunk count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentStore{
			LoadFn: func(ctx context.Context, entity string) ([]*persona.Chunk, error) {
				return []*persona.Chunk{{Text: "a"}, {Text: "b"}, {Text: "c"}}, nil
			},
		}

		store := personaslog.NewLoggingContentStore(inner, logger)
		chunks, err := store.Load(context.Background(), "ada_lovelace")

		require.NoError(t, err)
		assert.Len(t, chunks, 3)
		output := buf.String()
		assert.Contains(t, output, "store load")
		assert.Contains(t, output, "chunks=3")
	})

	t.Run("metadata lookups delegate silently", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentStore{
			ExistsFn: func(ctx context.Context, entity string) (bool, error) {
				return true, nil
			},
			ListEntitiesFn: func(ctx context.Context) ([]string, error) {
				return []string{"ada_lovelace"}, nil
			},
		}

		store := personaslog.NewLoggingContentStore(inner, logger)

		exists, err := store.Exists(context.Background(), "ada_lovelace")
		require.NoError(t, err)
		assert.True(t, exists)

		entities, err := store.ListEntities(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"ada_lovelace"}, entities)

		assert.Empty(t, buf.String())
	})
}
