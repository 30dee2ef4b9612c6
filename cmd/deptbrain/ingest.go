package main

import (
	"fmt"

	"github.com/fwojciec/deptbrain"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	count, err := deps.Retrieval.Ingest(deps.Ctx, deps.Catalog.Faculty(), deps.Catalog.Notes())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deptbrain.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Knowledge base ingested. %d chunks written.\n", count)
	return nil
}
