package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kvrancic/persona-mcp/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	// Assign only non-nil pointers so mcp.Config validation sees true nils.
	cfg := mcp.Config{Store: deps.Store}
	if deps.Ingestor != nil {
		cfg.Ingestor = deps.Ingestor
	}
	if deps.Composer != nil {
		cfg.Answerer = deps.Composer
	}

	if c.HTTP != "" {
		handler, err := mcp.NewHTTPHandler(cfg)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              c.HTTP,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-deps.Ctx.Done()
			_ = srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(deps.Stderr, "Serving MCP over HTTP on %s\n", c.HTTP)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	}

	// Stdio: stdout carries the protocol, so status goes to stderr.
	server, err := mcp.NewServer(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stderr, "Serving MCP over stdio")
	return server.Run(deps.Ctx)
}
