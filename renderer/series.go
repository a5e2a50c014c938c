package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mrassano/veedor"
)

// SeriesMarkdown renders the combined chart table: one row per month, one
// column per selected entity. An entity with no data that month renders an
// empty cell, never a zero: absence and zero are different facts.
func SeriesMarkdown(sel *veedor.Selection, rows []veedor.Row, mode veedor.ValuationMode) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Evolución de deuda (%s)", modeLabel(mode)))

	entries := sel.Entries()
	header := []string{"Mes"}
	alignment := []md.TableAlignment{md.AlignLeft}
	for _, entry := range entries {
		header = append(header, entry.Entity.Name)
		alignment = append(alignment, md.AlignRight)
	}

	table := md.TableSet{
		Alignment: alignment,
		Header:    header,
		Rows:      [][]string{},
	}
	for _, row := range rows {
		cells := []string{row.Month.String()}
		for _, entry := range entries {
			total, ok := row.Totals[entry.Entity.CUIT]
			if !ok {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, total.String())
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	if mode == veedor.Nominal || mode == veedor.Real {
		doc.PlainText("Montos en miles de pesos.")
	} else {
		doc.PlainText("Montos en dólares; un cero indica que no hay cotización para ese mes.")
	}
	return doc.String()
}

// DetailMarkdown renders the per-institution breakdown of a single entity's
// months, the textual equivalent of the chart tooltip.
func DetailMarkdown(e *veedor.Entity, rows []veedor.Row) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Detalle por banco: %s", e.Name))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Mes", "Entidad", "Situación", "Monto"},
		Rows:      [][]string{},
	}
	for _, row := range rows {
		for _, h := range row.Details[e.CUIT] {
			table.Rows = append(table.Rows, []string{
				row.Month.String(),
				h.Institution,
				fmt.Sprintf("%d", h.Risk),
				h.Amount.String(),
			})
		}
	}
	doc.Table(table)
	return doc.String()
}

func modeLabel(mode veedor.ValuationMode) string {
	switch mode {
	case veedor.Real:
		return "pesos constantes"
	case veedor.Dollar:
		return "dólares"
	default:
		return "pesos corrientes"
	}
}
