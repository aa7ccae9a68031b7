package main

import (
	"fmt"
	"time"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/ingest"
)

// Run executes the init command.
func (c *InitCmd) Run(deps *Dependencies) error {
	sess := &persona.Session{}

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d candidate pages for %q\n", event.Total, c.Person)
		case ingest.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Err)
		}
	}

	report, err := deps.Ingestor.Ingest(deps.Ctx, sess, c.Person, c.MaxURLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", persona.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s ready: %d/%d pages, %d new chunks, %d chars (%s)\n",
		persona.DisplayName(report.Person), report.Succeeded, report.Attempted,
		report.NewChunks, report.CharsStored, report.Elapsed.Round(time.Millisecond))

	return nil
}
