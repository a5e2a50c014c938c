package veedor

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// ExportedEntity is the list/search view of an entity: enough to render a
// selector without dragging the full debt history along.
type ExportedEntity struct {
	CUIT     string `json:"cuit"`
	Slug     string `json:"slug"`
	Name     string `json:"nombre"`
	Party    string `json:"partido,omitempty"`
	District string `json:"distrito,omitempty"`
	Position string `json:"cargo,omitempty"`
	Unit     string `json:"unidad,omitempty"`
}

// ExportedSelection is one selection entry on the wire.
type ExportedSelection struct {
	CUIT  string `json:"cuit"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// Outputs bundles the four contracts exposed to rendering collaborators:
// the addressable entity list, the ordered colored selection, the aggregated
// (possibly currency-adjusted) series, and the reconciled milestone overlay.
// All four are recomputed, never mutated in place.
type Outputs struct {
	GeneratedAt string              `json:"generated_at,omitempty"`
	Mode        string              `json:"modo"`
	Entities    []ExportedEntity    `json:"entidades"`
	Selection   []ExportedSelection `json:"seleccion"`
	Series      []Row               `json:"serie"`
	Milestones  []Annotation        `json:"hitos"`
}

// BuildOutputs derives all four output contracts for the selection and mode.
func (d *Dataset) BuildOutputs(sel *Selection, mode ValuationMode) *Outputs {
	out := &Outputs{
		GeneratedAt: d.Meta.GeneratedAt,
		Mode:        mode.String(),
		Entities:    make([]ExportedEntity, 0, d.Registry.Len()),
		Selection:   make([]ExportedSelection, 0, sel.Len()),
		Series:      d.Series(sel, mode),
		Milestones:  d.Overlay(sel),
	}
	for _, e := range d.Registry.Entities() {
		out.Entities = append(out.Entities, ExportedEntity{
			CUIT:     e.CUIT,
			Slug:     e.Slug,
			Name:     e.Name,
			Party:    e.Party,
			District: e.District,
			Position: e.Position,
			Unit:     e.Unit,
		})
	}
	for _, entry := range sel.Entries() {
		out.Selection = append(out.Selection, ExportedSelection{
			CUIT:  entry.Entity.CUIT,
			Slug:  entry.Entity.Slug,
			Color: entry.Color,
		})
	}
	return out
}

// EncodeOutputs writes the output contracts as indented JSON.
func EncodeOutputs(w io.Writer, out *Outputs) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("cannot encode outputs: %w", err)
	}
	return nil
}
