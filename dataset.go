package veedor

import (
	"fmt"
	"io"
	"log"

	json "github.com/goccy/go-json"

	"github.com/mrassano/veedor/month"
)

// Currencies the engine deals with. Registry figures are pesos; the dollar
// valuation mode converts them using the dataset's exchange-rate table.
const (
	Pesos   = "ARS"
	Dollars = "USD"
)

// IndexTable is a sparse month-to-value mapping supplied with the dataset:
// an inflation index or an exchange rate series. Not every month needs to be
// present.
type IndexTable struct {
	month.History[float64]
}

// UnmarshalJSON reads the table from its wire form, a JSON object mapping
// "YYYY-MM" to a positive number. Non-positive values cannot participate in
// any rescaling and are dropped with a warning.
func (t *IndexTable) UnmarshalJSON(b []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		on, err := month.Parse(k)
		if err != nil {
			return fmt.Errorf("invalid index table key: %w", err)
		}
		if v <= 0 {
			log.Printf("warning: dropping non-positive index value %v at %s", v, on)
			continue
		}
		t.Append(on, v)
	}
	return nil
}

func (t *IndexTable) MarshalJSON() ([]byte, error) {
	raw := make(map[string]float64, t.Len())
	for on, v := range t.Values() {
		raw[on.String()] = v
	}
	return json.Marshal(raw)
}

// Meta carries the dataset-level information: generation timestamp, the
// global milestone list, and the optional index tables.
type Meta struct {
	GeneratedAt      string      `json:"generated_at,omitempty"`
	GlobalMilestones []Milestone `json:"hitos_globales,omitempty"`
	Inflation        *IndexTable `json:"indice_inflacion,omitempty"`
	Dollar           *IndexTable `json:"indice_dolar,omitempty"`
}

// Document is one registry snapshot on the wire: either the legislators
// collection or the officials collection.
type Document struct {
	Meta Meta      `json:"meta"`
	Data []*Entity `json:"data"`
}

// DecodeDocument reads a registry snapshot from its JSON form.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode registry document: %w", err)
	}
	return &doc, nil
}

// Dataset is an immutable snapshot of both registry documents, reconciled
// into one entity space. All engine derivations read from it; none mutate it.
type Dataset struct {
	Registry *Registry
	Meta     Meta
}

// LoadDataset reconciles the legislators document (collection A) and the
// officials document (collection B) into a Dataset.
//
// Either document may be nil. Meta follows the same layering as entities: A
// wins, B fills gaps, and the global milestone lists are concatenated (A
// first) with exact duplicates removed.
func LoadDataset(legislators, officials *Document) (*Dataset, error) {
	var a, b []*Entity
	var metaA, metaB Meta
	if legislators != nil {
		a, metaA = legislators.Data, legislators.Meta
	}
	if officials != nil {
		b, metaB = officials.Data, officials.Meta
	}

	reg, err := Merge(a, b)
	if err != nil {
		return nil, err
	}

	return &Dataset{Registry: reg, Meta: mergeMeta(metaA, metaB)}, nil
}

func mergeMeta(a, b Meta) Meta {
	m := a
	if m.GeneratedAt == "" {
		m.GeneratedAt = b.GeneratedAt
	}
	if m.Inflation == nil {
		m.Inflation = b.Inflation
	}
	if m.Dollar == nil {
		m.Dollar = b.Dollar
	}

	type key struct {
		on   month.Month
		text string
	}
	seen := make(map[key]bool, len(a.GlobalMilestones))
	merged := make([]Milestone, 0, len(a.GlobalMilestones)+len(b.GlobalMilestones))
	for _, list := range [][]Milestone{a.GlobalMilestones, b.GlobalMilestones} {
		for _, hit := range list {
			k := key{hit.Month, hit.Text}
			if seen[k] {
				continue
			}
			seen[k] = true
			merged = append(merged, hit)
		}
	}
	m.GlobalMilestones = merged
	return m
}
