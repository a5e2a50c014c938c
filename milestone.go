package veedor

import (
	"github.com/mrassano/veedor/month"
)

// Known milestone kinds. Any other non-empty kind is interpreted as an
// office-position title (e.g. "Ministro de Economía") and gates the
// milestone's relevance on the entity having held that office.
const (
	KindGlobal    = "global"
	KindVote      = "voto"
	KindPolitical = "politico"
	KindPersonal  = "personal"
)

// Milestone is a dated annotation shown on the time series: a political
// event, a vote, a personal event, or an office-title-gated event.
type Milestone struct {
	Month month.Month `json:"fecha"`
	Text  string      `json:"texto"`
	Color string      `json:"color,omitempty"`
	Kind  string      `json:"tipo,omitempty"`
}

// universal reports whether the milestone is relevant to every entity
// regardless of its offices. An absent kind is treated as global, matching
// how the registry renders untyped milestones.
func (m Milestone) universal() bool {
	switch m.Kind {
	case "", KindGlobal, KindVote, KindPolitical:
		return true
	}
	return false
}

// RelevantTo reports whether a global-list milestone applies to the entity.
//
// Global, vote and political milestones apply to everyone. Any other kind is
// an office title: the milestone applies only if the entity held a matching
// office at a month strictly inside one of its office periods.
func (m Milestone) RelevantTo(e *Entity) bool {
	if m.universal() {
		return true
	}
	return e.HeldOffice(m.Kind, m.Month)
}
