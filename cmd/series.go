package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	veedor "github.com/mrassano/veedor"
	"github.com/mrassano/veedor/renderer"
)

type seriesCmd struct {
	slugs  string
	mode   string
	detail string
}

func (*seriesCmd) Name() string { return "series" }
func (*seriesCmd) Synopsis() string {
	return "display the monthly debt series for a set of officials"
}
func (*seriesCmd) Usage() string {
	return `veedor series -s <slug>[,<slug>...] [-mode nominal|real|usd] [-detail <slug>]

  Aggregates the monthly debt totals for up to four officials, one column
  per official. A month appears only when at least one selected official
  reported debt in it. With -detail, prints the per-institution breakdown
  for that official instead.

Usage Examples:
# Compare two officials in inflation-adjusted pesos.
$ veedor series -s juan-perez,maria-gomez -mode real

`
}

func (p *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.slugs, "s", "", "Comma-separated official slugs.")
	f.StringVar(&p.mode, "mode", "nominal", "Valuation mode (nominal, real, usd). See 'veedor topic valuation'.")
	f.StringVar(&p.detail, "detail", "", "Print the per-institution detail for this official.")
}

func (p *seriesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	rows := d.Series(sel, mode)

	if p.detail != "" {
		e := d.Registry.BySlug(p.detail)
		if e == nil || !sel.Has(e.CUIT) {
			fmt.Fprintf(os.Stderr, "Error: -detail must name one of the selected officials\n")
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.DetailMarkdown(e, rows))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SeriesMarkdown(sel, rows, mode))
	return subcommands.ExitSuccess
}
