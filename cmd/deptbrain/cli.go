package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/deptbrain"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    deptbrain.Config
	Logger    *slog.Logger
	Catalog   *deptbrain.Catalog
	Answerer  deptbrain.Answerer
	Retrieval *deptbrain.Retrieval
	Generator *deptbrain.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Start the HTTP API server"`
	Ingest IngestCmd `cmd:"" help:"Embed the knowledge base into the vector store"`
	Ask    AskCmd    `cmd:"" help:"Ask a question from the command line"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides LISTEN_ADDR)"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask the department assistant"`
}
