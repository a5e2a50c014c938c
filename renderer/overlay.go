package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/mrassano/veedor"
)

// MilestonesMarkdown renders the reconciled annotation overlay.
func MilestonesMarkdown(annotations []veedor.Annotation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Hitos")
	if len(annotations) == 0 {
		doc.PlainText("Sin hitos para la selección actual.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Mes", "Hito", "Tipo", "Color"},
		Rows:      [][]string{},
	}
	for _, a := range annotations {
		table.Rows = append(table.Rows, []string{a.Month.String(), a.Text, a.Kind, a.Color})
	}
	doc.Table(table)
	return doc.String()
}
