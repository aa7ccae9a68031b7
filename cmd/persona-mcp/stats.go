package main

import (
	"fmt"

	persona "github.com/kvrancic/persona-mcp"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	name := persona.NormalizeName(c.Person)

	stats, err := deps.Store.Stats(deps.Ctx, name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", persona.ErrorMessage(err))
		return err
	}

	if !stats.Exists {
		fmt.Fprintf(deps.Stderr, "error: persona %q not found. Use 'persona-mcp list' to see stored personas.\n", name)
		return persona.Errorf(persona.ENOTFOUND, "persona %q not found", name)
	}

	fmt.Fprintf(deps.Stdout, "%s: %d chunks, %d chars\n", persona.DisplayName(name), stats.Chunks, stats.TotalChars)
	for _, u := range stats.SourceURLs {
		fmt.Fprintf(deps.Stdout, "  %s\n", u)
	}

	return nil
}
