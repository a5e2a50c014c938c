package veedor

import (
	"testing"

	"github.com/mrassano/veedor/month"
)

func milestone(on, text, color, kind string) Milestone {
	return Milestone{Month: month.MustParse(on), Text: text, Color: color, Kind: kind}
}

func overlayDataset(t *testing.T, entities []*Entity, global ...Milestone) *Dataset {
	t.Helper()
	reg, err := Merge(entities, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	return &Dataset{Registry: reg, Meta: Meta{GlobalMilestones: global}}
}

func TestOverlay_OfficeTitleOpenInterval(t *testing.T) {
	e := &Entity{CUIT: "1", Name: "X", OfficePeriods: []OfficePeriod{{
		Title: "Ministro de Economía",
		Start: month.MustParse("2023-01"),
		End:   month.MustParse("2023-12"),
	}}}

	testCases := []struct {
		name string
		on   string
		want bool
	}{
		{name: "before start", on: "2022-12", want: false},
		{name: "on start is excluded", on: "2023-01", want: false},
		{name: "inside", on: "2023-06", want: true},
		{name: "on end is excluded", on: "2023-12", want: false},
		{name: "after end", on: "2024-01", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Title match is case-insensitive.
			m := milestone(tc.on, "jura", "#111111", "ministro de economía")
			if got := m.RelevantTo(e); got != tc.want {
				t.Errorf("RelevantTo = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlay_OfficeTitleFiltersByTitle(t *testing.T) {
	e := &Entity{CUIT: "1", Name: "X", OfficePeriods: []OfficePeriod{{
		Title: "Senador",
		Start: month.MustParse("2020-01"),
		End:   month.MustParse("2024-01"),
	}}}
	d := overlayDataset(t, []*Entity{e},
		milestone("2022-06", "asume gabinete", "#111111", "Ministro del Interior"),
		milestone("2022-07", "sesión clave", "#222222", "senador"),
	)
	sel := DecodeSelection(d.Registry, "x")

	got := d.Overlay(sel)
	if len(got) != 1 {
		t.Fatalf("overlay = %d annotations, want 1", len(got))
	}
	if got[0].Text != "sesión clave" {
		t.Errorf("kept %q, want the matching office title only", got[0].Text)
	}
}

func TestOverlay_GlobalKindsAlwaysRelevant(t *testing.T) {
	e := &Entity{CUIT: "1", Name: "X"} // no office periods at all
	d := overlayDataset(t, []*Entity{e},
		milestone("2024-01", "devaluación", "#111111", KindGlobal),
		milestone("2024-02", "ley bases", "#222222", KindVote),
		milestone("2024-03", "elecciones", "#333333", KindPolitical),
		milestone("2024-04", "sin tipo", "#444444", ""),
	)
	sel := DecodeSelection(d.Registry, "x")
	if got := d.Overlay(sel); len(got) != 4 {
		t.Errorf("overlay = %d annotations, want all 4 universal kinds", len(got))
	}
}

func TestOverlay_GlobalDeduplicatedAcrossEntities(t *testing.T) {
	entities := []*Entity{
		{CUIT: "1", Name: "X"},
		{CUIT: "2", Name: "Y"},
	}
	d := overlayDataset(t, entities, milestone("2024-01", "devaluación", "#111111", KindGlobal))
	sel := DecodeSelection(d.Registry, "x,y")

	got := d.Overlay(sel)
	if len(got) != 1 {
		t.Fatalf("overlay = %d annotations, want 1", len(got))
	}
	if got[0].Text != "devaluación" {
		t.Errorf("Text = %q, a global milestone must appear once", got[0].Text)
	}
}

func TestOverlay_GroupMergesTextsInEncounterOrder(t *testing.T) {
	e := &Entity{CUIT: "1", Name: "X", PersonalMilestones: []Milestone{
		milestone("2024-02", "asume banca", "#aa0000", KindPersonal),
	}}
	d := overlayDataset(t, []*Entity{e},
		milestone("2024-02", "ley bases", "#222222", KindVote),
	)
	sel := DecodeSelection(d.Registry, "x")

	got := d.Overlay(sel)
	if len(got) != 1 {
		t.Fatalf("overlay = %d annotations, want 1 merged group", len(got))
	}
	// Global list first, then personals; kind labels from the first member.
	if got[0].Text != "ley bases, asume banca" {
		t.Errorf("Text = %q, want %q", got[0].Text, "ley bases, asume banca")
	}
	if got[0].Kind != KindVote {
		t.Errorf("Kind = %q, want first member's %q", got[0].Kind, KindVote)
	}
	// Mixed personal+global group: neutral color.
	if got[0].Color != NeutralColor {
		t.Errorf("Color = %q, want neutral %q", got[0].Color, NeutralColor)
	}
}

func TestOverlay_ColorPersonalSingleOwner(t *testing.T) {
	entities := []*Entity{
		{CUIT: "1", Name: "X", PersonalMilestones: []Milestone{
			milestone("2024-03", "renuncia", "#aa0000", KindPersonal),
		}},
		{CUIT: "2", Name: "Y"},
	}
	d := overlayDataset(t, entities)
	sel := DecodeSelection(d.Registry, "x,y")

	got := d.Overlay(sel)
	if len(got) != 1 {
		t.Fatalf("overlay = %d annotations, want 1", len(got))
	}
	wantColor, _ := sel.ColorOf("1")
	if got[0].Color != wantColor {
		t.Errorf("Color = %q, want owner's selection color %q", got[0].Color, wantColor)
	}
}

func TestOverlay_ColorGlobalSingleSelection(t *testing.T) {
	// Scenario: a political milestone with entity X selected alone keeps its
	// own declared color, even though X has a personal milestone elsewhere.
	e := &Entity{CUIT: "1", Name: "X", PersonalMilestones: []Milestone{
		milestone("2024-05", "asume banca", "#aa0000", KindPersonal),
	}}
	d := overlayDataset(t, []*Entity{e},
		milestone("2024-02", "elecciones", "#123456", KindPolitical),
	)
	sel := DecodeSelection(d.Registry, "x")

	got := d.Overlay(sel)
	if len(got) != 2 {
		t.Fatalf("overlay = %d annotations, want 2", len(got))
	}
	if got[0].Month != month.MustParse("2024-02") || got[0].Color != "#123456" {
		t.Errorf("global group = %s %q, want 2024-02 with declared color #123456", got[0].Month, got[0].Color)
	}
}

func TestOverlay_ColorGlobalMultiSelectionIsNeutral(t *testing.T) {
	entities := []*Entity{
		{CUIT: "1", Name: "X"},
		{CUIT: "2", Name: "Y"},
	}
	d := overlayDataset(t, entities, milestone("2024-01", "devaluación", "#111111", KindGlobal))
	sel := DecodeSelection(d.Registry, "x,y")

	got := d.Overlay(sel)
	if got[0].Color != NeutralColor {
		t.Errorf("Color = %q, want neutral for multi-entity global groups", got[0].Color)
	}
}

func TestOverlay_PersonalFromTwoEntitiesIsNeutral(t *testing.T) {
	entities := []*Entity{
		{CUIT: "1", Name: "X", PersonalMilestones: []Milestone{
			milestone("2024-03", "renuncia", "#aa0000", KindPersonal),
		}},
		{CUIT: "2", Name: "Y", PersonalMilestones: []Milestone{
			milestone("2024-03", "asume", "#00aa00", KindPersonal),
		}},
	}
	d := overlayDataset(t, entities)
	sel := DecodeSelection(d.Registry, "x,y")

	got := d.Overlay(sel)
	if len(got) != 1 {
		t.Fatalf("overlay = %d annotations, want 1 merged group", len(got))
	}
	if got[0].Color != NeutralColor {
		t.Errorf("Color = %q, want neutral for mixed owners", got[0].Color)
	}
	if got[0].Text != "renuncia, asume" {
		t.Errorf("Text = %q, want selection-order merge", got[0].Text)
	}
}

func TestOverlay_SortedByMonth(t *testing.T) {
	e := &Entity{CUIT: "1", Name: "X", PersonalMilestones: []Milestone{
		milestone("2024-05", "b", "", KindPersonal),
		milestone("2023-11", "a", "", KindPersonal),
	}}
	d := overlayDataset(t, []*Entity{e})
	sel := DecodeSelection(d.Registry, "x")

	got := d.Overlay(sel)
	if len(got) != 2 || got[0].Month.After(got[1].Month) {
		t.Errorf("overlay not sorted by month: %v", got)
	}
}

func TestOverlay_EmptySelection(t *testing.T) {
	d := overlayDataset(t, []*Entity{{CUIT: "1", Name: "X"}},
		milestone("2024-01", "devaluación", "#111111", KindGlobal),
	)
	if got := d.Overlay(NewSelection()); len(got) != 0 {
		t.Errorf("empty selection produced %d annotations", len(got))
	}
}
