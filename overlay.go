package veedor

import (
	"sort"
	"strings"

	"github.com/mrassano/veedor/month"
)

// Annotation is one reconciled overlay entry: every milestone relevant to
// the current selection that falls on the same month, merged into a single
// colored marker.
type Annotation struct {
	Month month.Month `json:"fecha"`
	Text  string      `json:"texto"`
	Color string      `json:"color"`
	Kind  string      `json:"tipo,omitempty"`
}

// member is a milestone gathered for the overlay, with its owning entity
// when it is a personal milestone (nil for global-list milestones).
type member struct {
	m     Milestone
	owner *Entity
}

// Overlay reconciles the dataset's global milestones and the selected
// entities' personal milestones into one ordered-by-month annotation list.
//
// A global milestone is kept when it is relevant to at least one selected
// entity, and it appears once no matter how many entities it applies to.
// Milestones sharing an exact month are merged: their texts joined with
// ", " in encounter order (global list first, then personals in selection
// order), the kind of the first member labeling the group.
//
// Group color priority:
//  1. every member is a personal milestone of the same single entity: that
//     entity's selection color, so annotations stay visually attributable
//     in multi-entity overlays;
//  2. no personal members and exactly one entity selected: the milestone's
//     own declared color, so single-entity views keep the dataset's authored
//     colors;
//  3. anything else: the neutral color.
func (d *Dataset) Overlay(sel *Selection) []Annotation {
	if sel.Len() == 0 {
		return nil
	}

	var members []member
	for _, m := range d.Meta.GlobalMilestones {
		for _, e := range sel.Entities() {
			if m.RelevantTo(e) {
				members = append(members, member{m: m})
				break
			}
		}
	}
	for _, e := range sel.Entities() {
		for _, m := range e.PersonalMilestones {
			members = append(members, member{m: m, owner: e})
		}
	}

	// Group by exact month, preserving encounter order within each group.
	groups := make(map[month.Month][]member)
	for _, mb := range members {
		groups[mb.m.Month] = append(groups[mb.m.Month], mb)
	}

	out := make([]Annotation, 0, len(groups))
	for on, group := range groups {
		texts := make([]string, len(group))
		for i, mb := range group {
			texts[i] = mb.m.Text
		}
		out = append(out, Annotation{
			Month: on,
			Text:  strings.Join(texts, ", "),
			Color: groupColor(sel, group),
			Kind:  group[0].m.Kind,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

func groupColor(sel *Selection, group []member) string {
	allPersonal, anyPersonal := true, false
	sameOwner := true
	var owner *Entity
	for _, mb := range group {
		if mb.owner == nil {
			allPersonal = false
			continue
		}
		anyPersonal = true
		if owner == nil {
			owner = mb.owner
		} else if owner != mb.owner {
			sameOwner = false
		}
	}

	if allPersonal && sameOwner && owner != nil {
		if c, ok := sel.ColorOf(owner.CUIT); ok {
			return c
		}
	}
	if !anyPersonal && sel.Len() == 1 {
		if c := group[0].m.Color; c != "" {
			return c
		}
	}
	return NeutralColor
}
