package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/taxagent/taxagent"
	"github.com/taxagent/taxagent/convert"
	"github.com/taxagent/taxagent/format"
)

// CLI represents the command-line interface structure.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert a US Tax Code XML file to Markdown."`
	Format  FormatCmd  `cmd:"" help:"Reformat a Markdown corpus with a local LLM."`
	Ask     AskCmd     `cmd:"" help:"Ask questions about a converted Markdown corpus."`
}

// Dependencies holds the runtime dependencies injected into commands.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// convert
	Converter *convert.Converter

	// format
	Runner *format.Runner

	// ask
	Splitter taxagent.Splitter
	NewIndex func(sections []taxagent.Section) taxagent.Index
	Asker    taxagent.Asker
}
