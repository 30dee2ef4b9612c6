package main

import (
	"fmt"

	"github.com/fwojciec/deptbrain"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Answerer.Answer(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deptbrain.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, deptbrain.FormatAnswer(answer))
	return nil
}
