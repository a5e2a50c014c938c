package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/google/subcommands"
	veedor "github.com/mrassano/veedor"
	"github.com/mrassano/veedor/renderer"
)

// defaultShareURL is the public dashboard the share links point at.
const defaultShareURL = "https://veedor.ar/"

type shareCmd struct {
	url string
}

func (*shareCmd) Name() string { return "share" }
func (*shareCmd) Synopsis() string {
	return "build or edit a shareable dashboard link for a selection of officials"
}
func (*shareCmd) Usage() string {
	return `veedor share [-url <link>] [<slug>...]

  Decodes the selection carried by a dashboard link, toggles the given
  officials in or out, and prints the updated link. Without -url, starts
  from an empty selection on the public dashboard. Links using the older
  single-official parameter are understood too.

Usage Examples:
# A link comparing two officials.
$ veedor share juan-perez maria-gomez

# Remove one official from an existing link.
$ veedor share -url 'https://veedor.ar/?sel=juan-perez,maria-gomez' maria-gomez

`
}

func (p *shareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.url, "url", defaultShareURL, "Dashboard link to start from.")
}

func (p *shareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := OpenDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	u, err := url.Parse(p.url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid link %q: %v\n", p.url, err)
		return subcommands.ExitFailure
	}
	q := u.Query()
	sel := veedor.DecodeSelectionQuery(d.Registry, q)

	for _, slug := range f.Args() {
		e := d.Registry.BySlug(slug)
		if e == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown official %q, see 'veedor list'\n", slug)
			return subcommands.ExitFailure
		}
		if err := sel.Toggle(e); err != nil {
			if errors.Is(err, veedor.ErrSelectionFull) {
				fmt.Fprintf(os.Stderr, "Error: at most %d officials can be compared, remove one first\n", veedor.MaxSelected)
				return subcommands.ExitFailure
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	veedor.EncodeSelectionQuery(sel, q)
	u.RawQuery = q.Encode()

	fmt.Println(u.String())
	if sel.Len() > 0 {
		printMarkdown(renderer.SelectionMarkdown(sel))
	}
	return subcommands.ExitSuccess
}
