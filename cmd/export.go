package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	veedor "github.com/mrassano/veedor"
)

type exportCmd struct {
	slugs      string
	mode       string
	outputFile string
}

func (*exportCmd) Name() string { return "export" }
func (*exportCmd) Synopsis() string {
	return "export the series and milestones for a selection as JSON"
}
func (*exportCmd) Usage() string {
	return `veedor export -s <slug>[,<slug>...] [-mode nominal|real|usd] [-o <file>]

  Builds the full derived view for a selection of officials, the same one
  the dashboard renders, and writes it as JSON: the selected officials
  with their colors, the monthly series in the chosen valuation mode, and
  the relevant milestones.

Usage Examples:
# Dump a comparison in dollars to a file.
$ veedor export -s juan-perez,maria-gomez -mode usd -o comparison.json

`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.slugs, "s", "", "Comma-separated official slugs.")
	f.StringVar(&p.mode, "mode", "nominal", "Valuation mode (nominal, real, usd).")
	f.StringVar(&p.outputFile, "o", "", "Write to this file instead of stdout.")
}

func (p *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := OpenDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	mode, err := veedor.ParseValuationMode(p.mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	sel, err := parseSelection(d, p.slugs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if p.outputFile != "" {
		f, err := os.Create(p.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not create %q: %v\n", p.outputFile, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		w = f
	}

	out := d.BuildOutputs(sel, mode)
	if err := veedor.EncodeOutputs(w, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not encode output: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
