package renderer

import (
	"github.com/mrassano/veedor"
)

// Profile is the single-entity header view: identity, facets, office history
// and personal milestone badges, without the debt table itself.
type Profile struct {
	Name     string `json:"nombre"`
	CUIT     string `json:"cuit"`
	Slug     string `json:"slug"`
	Position string `json:"cargo,omitempty"`
	District string `json:"distrito,omitempty"`
	Party    string `json:"partido,omitempty"`
	Unit     string `json:"unidad,omitempty"`

	Offices    []ProfileOffice    `json:"cargos,omitempty"`
	Milestones []ProfileMilestone `json:"hitos,omitempty"`
	Sources    []string           `json:"fuentes,omitempty"`
}

// ProfileOffice is one office period line.
type ProfileOffice struct {
	Title string `json:"titulo"`
	Start string `json:"desde"`
	End   string `json:"hasta"`
}

// ProfileMilestone is one personal milestone badge.
type ProfileMilestone struct {
	Month string `json:"fecha"`
	Text  string `json:"texto"`
	Color string `json:"color,omitempty"`
}

// NewProfile builds the profile view for an entity.
func NewProfile(e *veedor.Entity) *Profile {
	p := &Profile{
		Name:     e.Name,
		CUIT:     e.CUIT,
		Slug:     e.Slug,
		Position: e.Position,
		District: e.District,
		Party:    e.Party,
		Unit:     e.Unit,
		Sources:  e.Sources,
	}
	for _, o := range e.OfficePeriods {
		p.Offices = append(p.Offices, ProfileOffice{
			Title: o.Title,
			Start: o.Start.String(),
			End:   o.End.String(),
		})
	}
	for _, m := range e.PersonalMilestones {
		p.Milestones = append(p.Milestones, ProfileMilestone{
			Month: m.Month.String(),
			Text:  m.Text,
			Color: m.Color,
		})
	}
	return p
}

// ProfileMarkdown renders the Profile struct to a markdown string.
func ProfileMarkdown(p *Profile) string {
	partials := map[string]string{
		"profile_title":      "profile_title.md",
		"profile_offices":    "profile_offices.md",
		"profile_milestones": "profile_milestones.md",
		"profile_sources":    "profile_sources.md",
	}
	return renderTemplate("profile", "profile.md", partials, p)
}
