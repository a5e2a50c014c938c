package veedor

import (
	"slices"
	"strings"

	"github.com/mrassano/veedor/month"
)

// DebtRecord is a single line of the bank-debtor registry: one month, one
// institution. Amounts are expressed in thousands of currency units, as
// published by the registry.
//
// Records are append-only within a dataset; several records may share the
// same month (different institutions) and are summed, never overwritten.
type DebtRecord struct {
	Institution string      `json:"entidad"`
	Month       month.Month `json:"fecha"`
	Risk        int         `json:"situacion"` // 1 (normal) to 5 (unrecoverable)
	Amount      int64       `json:"monto"`
}

// OfficePeriod is a period during which an entity held a named office. It is
// used only as a relevance predicate for office-title milestones.
type OfficePeriod struct {
	Title string      `json:"titulo"`
	Start month.Month `json:"desde"`
	End   month.Month `json:"hasta"`
}

// Contains reports whether m falls strictly inside the period.
//
// The interval is open: the boundary months themselves are excluded.
func (p OfficePeriod) Contains(m month.Month) bool {
	return m.After(p.Start) && m.Before(p.End)
}

// Matches reports whether the period's title equals the given office title,
// ignoring case.
func (p OfficePeriod) Matches(title string) bool {
	return strings.EqualFold(p.Title, title)
}

// Entity is a tracked public official or legislator, uniquely identified by
// its CUIT.
//
// Descriptive attributes (party, district, position, unit) are optional: a
// missing value is simply absent, never an error.
type Entity struct {
	CUIT     string `json:"cuit"`
	Name     string `json:"nombre"`
	Party    string `json:"partido,omitempty"`
	District string `json:"distrito,omitempty"`
	Position string `json:"cargo,omitempty"`
	Unit     string `json:"unidad,omitempty"`

	// Sources lists the registry documents this entity was extracted from.
	Sources []string `json:"pdf_paths,omitempty"`

	OfficePeriods      []OfficePeriod `json:"cargos,omitempty"`
	PersonalMilestones []Milestone    `json:"hitos_personales,omitempty"`
	DebtHistory        []DebtRecord   `json:"historial,omitempty"`

	// Slug is the URL-safe identifier assigned by Merge. It is not part of
	// the registry wire format.
	Slug string `json:"-"`
}

// HeldOffice reports whether the entity held an office with the given title
// (case-insensitive) at a month strictly inside one of its office periods.
func (e *Entity) HeldOffice(title string, m month.Month) bool {
	for _, p := range e.OfficePeriods {
		if p.Matches(title) && p.Contains(m) {
			return true
		}
	}
	return false
}

// clone returns a shallow copy of e with its own slices, so that merging
// never mutates a source collection.
func (e *Entity) clone() *Entity {
	c := *e
	c.Sources = slices.Clone(e.Sources)
	c.OfficePeriods = slices.Clone(e.OfficePeriods)
	c.PersonalMilestones = slices.Clone(e.PersonalMilestones)
	c.DebtHistory = slices.Clone(e.DebtHistory)
	return &c
}
