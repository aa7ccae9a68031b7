package main

import (
	"fmt"

	persona "github.com/kvrancic/persona-mcp"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	names, err := deps.Store.ListEntities(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", persona.ErrorMessage(err))
		return err
	}

	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No personas stored. Use 'persona-mcp init' to create one.")
		return nil
	}

	for _, name := range names {
		stats, err := deps.Store.Stats(deps.Ctx, name)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", persona.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s  %d chunks  %d chars\n", name, stats.Chunks, stats.TotalChars)
	}

	return nil
}
