package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wotd"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	result, err := deps.Pipeline.Preview(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wotd.ErrorMessage(err))
		return err
	}

	if missing := result.Word.MissingFields(); len(missing) > 0 {
		fmt.Fprintf(deps.Stderr, "warning: could not extract: %s\n", strings.Join(missing, ", "))
	}

	fmt.Fprintln(deps.Stdout, result.Message)
	return nil
}
