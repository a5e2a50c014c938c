package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/mrassano/veedor"
)

// ListMarkdown renders the addressable entity list the way the selector
// sidebar shows it: slug first, since the slug is what sharing links use.
func ListMarkdown(entities []*veedor.Entity) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Legisladores y funcionarios")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Slug", "Nombre", "Cargo", "Distrito", "Bloque"},
		Rows:      [][]string{},
	}
	for _, e := range entities {
		table.Rows = append(table.Rows, []string{e.Slug, e.Name, e.Position, e.District, e.Party})
	}
	doc.Table(table)
	return doc.String()
}

// SelectionMarkdown renders the current selection with its assigned colors.
func SelectionMarkdown(sel *veedor.Selection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Selección")
	if sel.Len() == 0 {
		doc.PlainText("Sin selección.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Slug", "Nombre", "Color"},
		Rows:      [][]string{},
	}
	for _, entry := range sel.Entries() {
		table.Rows = append(table.Rows, []string{entry.Entity.Slug, entry.Entity.Name, entry.Color})
	}
	doc.Table(table)
	return doc.String()
}
