package main

import (
	"fmt"

	persona "github.com/kvrancic/persona-mcp"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Composer.Answer(deps.Ctx, nil, c.Person, c.Question)
	if err != nil {
		if persona.ErrorCode(err) == persona.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'persona-mcp list' to see stored personas.\n", persona.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", persona.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
