package renderer

import (
	"strings"
	"testing"

	"github.com/mrassano/veedor"
	"github.com/mrassano/veedor/month"
)

func testSelection(t *testing.T) (*veedor.Dataset, *veedor.Selection) {
	t.Helper()
	entities := []*veedor.Entity{
		{CUIT: "1", Name: "Juan Pérez", Position: "Diputado", District: "Salta", DebtHistory: []veedor.DebtRecord{
			{Institution: "Banco A", Month: month.MustParse("2024-01"), Risk: 1, Amount: 100},
			{Institution: "Banco B", Month: month.MustParse("2024-01"), Risk: 3, Amount: 50},
			{Institution: "Banco A", Month: month.MustParse("2024-02"), Risk: 1, Amount: 70},
		}},
		{CUIT: "2", Name: "Rosa Díaz", DebtHistory: []veedor.DebtRecord{
			{Institution: "Banco C", Month: month.MustParse("2024-02"), Risk: 1, Amount: 30},
		}},
	}
	reg, err := veedor.Merge(entities, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	d := &veedor.Dataset{Registry: reg}
	return d, veedor.DecodeSelection(reg, "juan-perez,rosa-diaz")
}

func TestSeriesMarkdown(t *testing.T) {
	d, sel := testSelection(t)
	got := SeriesMarkdown(sel, d.Series(sel, veedor.Nominal), veedor.Nominal)

	for _, want := range []string{"Juan Pérez", "Rosa Díaz", "2024-01", "2024-02"} {
		if !strings.Contains(got, want) {
			t.Errorf("series markdown missing %q:\n%s", want, got)
		}
	}
	// Rosa has no data in 2024-01: her cell must be empty, not zero.
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "2024-01") && strings.Contains(line, "0") && strings.Count(line, "|") > 2 {
			cells := strings.Split(line, "|")
			last := strings.TrimSpace(cells[len(cells)-2])
			if last != "" {
				t.Errorf("2024-01 cell for the absent entity = %q, want empty", last)
			}
		}
	}
}

func TestDetailMarkdown(t *testing.T) {
	d, sel := testSelection(t)
	e := d.Registry.BySlug("juan-perez")
	got := DetailMarkdown(e, d.Series(sel, veedor.Nominal))
	for _, want := range []string{"Banco A", "Banco B", "Detalle por banco"} {
		if !strings.Contains(got, want) {
			t.Errorf("detail markdown missing %q:\n%s", want, got)
		}
	}
}

func TestListMarkdown(t *testing.T) {
	d, _ := testSelection(t)
	got := ListMarkdown(d.Registry.Entities())
	for _, want := range []string{"juan-perez", "rosa-diaz", "Diputado", "Salta"} {
		if !strings.Contains(got, want) {
			t.Errorf("list markdown missing %q:\n%s", want, got)
		}
	}
}

func TestSelectionMarkdown(t *testing.T) {
	d, sel := testSelection(t)
	got := SelectionMarkdown(sel)
	if !strings.Contains(got, veedor.Palette[0]) || !strings.Contains(got, veedor.Palette[1]) {
		t.Errorf("selection markdown missing palette colors:\n%s", got)
	}
	if got := SelectionMarkdown(veedor.NewSelection()); !strings.Contains(got, "Sin selección") {
		t.Errorf("empty selection markdown = %s", got)
	}
	_ = d
}

func TestMilestonesMarkdown(t *testing.T) {
	annotations := []veedor.Annotation{
		{Month: month.MustParse("2024-02"), Text: "Ley Bases", Color: "#ef4444", Kind: veedor.KindVote},
	}
	got := MilestonesMarkdown(annotations)
	for _, want := range []string{"2024-02", "Ley Bases", "#ef4444"} {
		if !strings.Contains(got, want) {
			t.Errorf("milestones markdown missing %q:\n%s", want, got)
		}
	}
}

func TestProfileMarkdown(t *testing.T) {
	e := &veedor.Entity{
		CUIT: "1", Name: "Juan Pérez", Position: "Diputado",
		Sources: []string{"informes/juan.pdf"},
		OfficePeriods: []veedor.OfficePeriod{
			{Title: "Ministro", Start: month.MustParse("2023-01"), End: month.MustParse("2024-06")},
		},
		PersonalMilestones: []veedor.Milestone{
			{Month: month.MustParse("2024-03"), Text: "Renuncia", Kind: veedor.KindPersonal},
		},
	}
	e.Slug = "juan-perez"
	got := ProfileMarkdown(NewProfile(e))
	for _, want := range []string{"# Juan Pérez", "juan-perez", "Ministro", "Renuncia", "informes/juan.pdf"} {
		if !strings.Contains(got, want) {
			t.Errorf("profile markdown missing %q:\n%s", want, got)
		}
	}
}
