package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mrassano/veedor/renderer"
)

type showCmd struct{}

func (*showCmd) Name() string { return "show" }
func (*showCmd) Synopsis() string {
	return "show everything known about one official"
}
func (*showCmd) Usage() string {
	return `veedor show <slug>

  Prints the profile of one official: identity, offices held over time,
  personal milestones and source documents.

`
}

func (*showCmd) SetFlags(_ *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one official slug")
		return subcommands.ExitUsageError
	}
	d, err := OpenDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	e := d.Registry.BySlug(f.Arg(0))
	if e == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown official %q, see 'veedor list'\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProfileMarkdown(renderer.NewProfile(e)))
	return subcommands.ExitSuccess
}
