package main

import (
	deptbrainhttp "github.com/fwojciec/deptbrain/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	config := deps.Config
	if c.Addr != "" {
		config.ListenAddr = c.Addr
	}

	server := deptbrainhttp.NewServer(
		config,
		deps.Catalog,
		deps.Answerer,
		deps.Retrieval,
		deps.Generator,
		deps.Logger,
	)
	return server.Run(deps.Ctx)
}
