package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mrassano/veedor/renderer"
)

type listCmd struct {
	query    string
	position string
	district string
	party    string
	facets   bool
}

func (*listCmd) Name() string { return "list" }
func (*listCmd) Synopsis() string {
	return "list the public officials in the registry, with optional filters"
}
func (*listCmd) Usage() string {
	return `veedor list [-q <text>] [-cargo <cargo>] [-distrito <distrito>] [-partido <partido>]

  Lists the reconciled registry of public officials, one row each, with
  slug, CUIT, position, district and party. Filters are case-insensitive
  substrings and combine with AND.

Usage Examples:
# All deputies from Buenos Aires.
$ veedor list -cargo diputado -distrito "Buenos Aires"

`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Free-text filter on the official's name.")
	f.StringVar(&p.position, "cargo", "", "Filter on the position.")
	f.StringVar(&p.district, "distrito", "", "Filter on the district.")
	f.StringVar(&p.party, "partido", "", "Filter on the party.")
	f.BoolVar(&p.facets, "facets", false, "Print the available districts and parties instead of the list.")
}

func (p *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := OpenDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.facets {
		fmt.Println("Distritos:", strings.Join(d.Registry.Districts(), ", "))
		fmt.Println("Partidos: ", strings.Join(d.Registry.Parties(), ", "))
		return subcommands.ExitSuccess
	}

	list := d.Registry.Filter(p.query, p.position, p.district, p.party)
	printMarkdown(renderer.ListMarkdown(list))
	return subcommands.ExitSuccess
}
