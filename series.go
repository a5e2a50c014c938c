package veedor

import (
	"sort"

	"github.com/mrassano/veedor/month"
)

// Holding is one institution's contribution to an entity's monthly total,
// with its amount already rescaled by the valuation mode. It feeds the
// per-bank breakdown in chart tooltips.
type Holding struct {
	Institution string `json:"entidad"`
	Risk        int    `json:"situacion"`
	Amount      Amount `json:"monto"`
}

// Row is one month of the combined chart table. Totals and Details are keyed
// by CUIT; an entity with no record that month contributes no key at all.
// Absence of a key means "no data", which downstream rendering must keep
// distinct from an explicit zero.
type Row struct {
	Month   month.Month          `json:"fecha"`
	Totals  map[string]Amount    `json:"totales"`
	Details map[string][]Holding `json:"bancos"`
}

// Aggregate groups the selected entities' raw debt histories into one
// ordered-by-month sequence of rows. Amounts from several institutions in
// the same month are summed; each contributing record is also kept,
// normalized, in the row's details.
//
// A selection of size zero or one is simply the degenerate case of the same
// algorithm.
func Aggregate(sel *Selection, n *Normalizer) []Row {
	byMonth := make(map[month.Month]*Row)
	for _, e := range sel.Entities() {
		for _, rec := range e.DebtHistory {
			row, ok := byMonth[rec.Month]
			if !ok {
				row = &Row{
					Month:   rec.Month,
					Totals:  make(map[string]Amount),
					Details: make(map[string][]Holding),
				}
				byMonth[rec.Month] = row
			}
			adjusted := n.Apply(rec)
			row.Totals[e.CUIT] = row.Totals[e.CUIT].Add(adjusted)
			row.Details[e.CUIT] = append(row.Details[e.CUIT], Holding{
				Institution: rec.Institution,
				Risk:        rec.Risk,
				Amount:      adjusted,
			})
		}
	}

	rows := make([]Row, 0, len(byMonth))
	for _, row := range byMonth {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month.Before(rows[j].Month) })
	return rows
}

// Series derives the combined, currency-adjusted chart table for the
// selection. It is recomputed in full on every selection or mode change;
// callers needing to avoid the cost memoize on (selection, mode, dataset).
func (d *Dataset) Series(sel *Selection, mode ValuationMode) []Row {
	return Aggregate(sel, NewNormalizer(mode, d.Meta))
}
