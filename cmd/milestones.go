package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mrassano/veedor/renderer"
)

type milestonesCmd struct {
	slugs string
}

func (*milestonesCmd) Name() string { return "milestones" }
func (*milestonesCmd) Synopsis() string {
	return "display the dated events relevant to a set of officials"
}
func (*milestonesCmd) Usage() string {
	return `veedor milestones -s <slug>[,<slug>...]

  Lists the milestones relevant to the selected officials, one row per
  month: economy-wide events, events tied to an office held at the time,
  and each official's personal history entries.

`
}

func (p *milestonesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.slugs, "s", "", "Comma-separated official slugs.")
}

func (p *milestonesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := OpenDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	sel, err := parseSelection(d, p.slugs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MilestonesMarkdown(d.Overlay(sel)))
	return subcommands.ExitSuccess
}
