package main

import (
	"fmt"
)

// ConvertCmd converts a USLM XML file into a Markdown corpus.
type ConvertCmd struct {
	XML       string `arg:"" help:"Path to the USLM XML file." type:"existingfile"`
	Out       string `arg:"" optional:"" help:"Output Markdown path." default:"tax_code.md"`
	Reprocess bool   `help:"Re-convert even if the source is unchanged."`
}

func (c *ConvertCmd) Run(deps *Dependencies) error {
	result, err := deps.Converter.Run(deps.Ctx, c.XML, c.Out, c.Reprocess)
	if err != nil {
		return err
	}

	if result.Skipped {
		fmt.Fprintf(deps.Stdout, "%s is up to date (source unchanged); use --reprocess to force\n", c.Out)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Converted %d sections to %s (%d bytes)\n", result.Records, c.Out, result.Bytes)
	if result.Warnings > 0 {
		fmt.Fprintf(deps.Stdout, "%d warnings (see log)\n", result.Warnings)
	}
	return nil
}
