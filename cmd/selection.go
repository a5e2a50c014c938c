package cmd

import (
	"errors"
	"fmt"
	"strings"

	veedor "github.com/mrassano/veedor"
)

// parseSelection builds a selection from a comma-separated slug list.
// Unlike the URL decoder, the CLI is strict: an unknown slug or one
// official too many is an error, not something to silently drop.
func parseSelection(d *veedor.Dataset, slugs string) (*veedor.Selection, error) {
	sel := veedor.NewSelection()
	for _, slug := range strings.Split(slugs, ",") {
		slug = strings.TrimSpace(slug)
		if slug == "" {
			continue
		}
		e := d.Registry.BySlug(slug)
		if e == nil {
			return nil, fmt.Errorf("unknown official %q, see 'veedor list'", slug)
		}
		if err := sel.Toggle(e); err != nil {
			if errors.Is(err, veedor.ErrSelectionFull) {
				return nil, fmt.Errorf("too many officials, at most %d can be compared", veedor.MaxSelected)
			}
			return nil, err
		}
	}
	if sel.Len() == 0 {
		return nil, fmt.Errorf("no official selected, use -s with slugs from 'veedor list'")
	}
	return sel, nil
}
