package main

import (
	"context"
	"io"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/compose"
	"github.com/kvrancic/persona-mcp/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Store    persona.ContentStore
	Ingestor *ingest.Ingestor
	Composer *compose.Composer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool   `short:"v" help:"Log search, scrape, and storage calls to stderr"`
	Render    bool   `help:"Render pages in headless Chrome instead of plain HTTP fetches"`
	Search    string `default:"serper" enum:"serper,google" help:"Web search backend"`
	Extractor string `default:"trafilatura" enum:"trafilatura,readability" help:"Content extraction engine"`

	Init  InitCmd  `cmd:"" help:"Build a persona's knowledge base from their online content"`
	Ask   AskCmd   `cmd:"" help:"Ask a stored persona a question, answered in their voice"`
	Stats StatsCmd `cmd:"" help:"Show a persona's knowledge base statistics"`
	List  ListCmd  `cmd:"" help:"List stored personas"`
	Serve ServeCmd `cmd:"" help:"Serve the persona tools over MCP"`
}

// InitCmd is the "init" subcommand.
type InitCmd struct {
	Person      string `arg:"" help:"Full name of the person (e.g. 'Ada Lovelace')"`
	MaxURLs     int    `short:"n" default:"3" help:"Maximum number of pages to scrape"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent scrape limit"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Person   string `arg:"" help:"Persona name"`
	Question string `arg:"" help:"Question to ask the persona"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Person string `arg:"" help:"Persona name"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `help:"Serve MCP over HTTP on this address instead of stdio (e.g. :8080)"`
}
