package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	main "github.com/kvrancic/persona-mcp/cmd/persona-mcp"
	"github.com/kvrancic/persona-mcp/compose"
	"github.com/kvrancic/persona-mcp/ingest"
	"github.com/kvrancic/persona-mcp/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("rejects missing dependencies", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Store:  mem.NewStore(),
		}

		cmd := &main.ServeCmd{HTTP: "127.0.0.1:0"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("http server shuts down on context cancel", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		store := mem.NewStore()
		deps := &main.Dependencies{
			Ctx:      ctx,
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Store:    store,
			Ingestor: &ingest.Ingestor{Store: store},
			Composer: &compose.Composer{Store: store},
		}

		cmd := &main.ServeCmd{HTTP: "127.0.0.1:0"}

		errCh := make(chan error, 1)
		go func() { errCh <- cmd.Run(deps) }()

		// Give the listener a moment to bind before cancelling.
		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not shut down after context cancellation")
		}
	})
}
