package main

import (
	"fmt"

	"github.com/fwojciec/wotd"
)

// Run executes the send command.
func (c *SendCmd) Run(deps *Dependencies) error {
	result, err := deps.Pipeline.Run(deps.Ctx, deps.Phone)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wotd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Today's word: %s\n\n", result.Word.Headword)
	fmt.Fprintln(deps.Stdout, result.Message)
	fmt.Fprintf(deps.Stdout, "\nSent to %s\n", deps.Phone)
	return nil
}
