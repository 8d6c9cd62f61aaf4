package main

import (
	"fmt"

	"github.com/taxagent/taxagent/format"
)

// FormatCmd reformats a Markdown corpus chunk by chunk with a local LLM.
type FormatCmd struct {
	Input  string `arg:"" help:"Path to the Markdown corpus to reformat." type:"existingfile"`
	Output string `arg:"" optional:"" help:"Output path for the formatted corpus." default:"tax_code_formatted.md"`

	Model     string `help:"Ollama model to format with." default:"${ollama_model}"`
	ChunkSize int    `help:"Maximum chunk size in characters." default:"5000"`
	Resume    bool   `help:"Resume from previously formatted chunks."`
	Clean     bool   `help:"Remove intermediate chunk files after a successful run."`
}

func (c *FormatCmd) Run(deps *Dependencies) error {
	result, err := deps.Runner.Run(deps.Ctx, c.Input, c.Output, format.Options{
		Resume: c.Resume,
		Clean:  c.Clean,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Formatted %d/%d chunks to %s\n", result.Formatted, result.Chunks, c.Output)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d chunks failed and were left as error placeholders; re-run with --resume after fixing\n", result.Failed)
	}
	return nil
}
