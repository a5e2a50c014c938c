package veedor

import (
	"reflect"
	"testing"
)

func TestMerge_FillsGapsFromOfficials(t *testing.T) {
	// Scenario: the same person appears in both registries, the officials
	// snapshot knowing the unit the legislators one lacks.
	a := []*Entity{{CUIT: "20326896684", Name: "Juan Pérez"}}
	b := []*Entity{{CUIT: "20326896684", Name: "Juan Perez", Unit: "Ministerio X"}}

	reg, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	e := reg.Get("20326896684")
	if e == nil {
		t.Fatal("merged entity not found by cuit")
	}
	if e.Name != "Juan Pérez" {
		t.Errorf("Name = %q, want A's %q", e.Name, "Juan Pérez")
	}
	if e.Unit != "Ministerio X" {
		t.Errorf("Unit = %q, want B's %q", e.Unit, "Ministerio X")
	}
	if e.Slug != "juan-perez" {
		t.Errorf("Slug = %q, want %q", e.Slug, "juan-perez")
	}
}

func TestMerge_OrderAndCompleteness(t *testing.T) {
	a := []*Entity{
		{CUIT: "1", Name: "Ana"},
		{CUIT: "2", Name: "Beto"},
	}
	b := []*Entity{
		{CUIT: "3", Name: "Carla"},
		{CUIT: "2", Name: "Beto Bis", Party: "Partido Z"},
		{CUIT: "4", Name: "Dario"},
	}
	reg, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	var gotOrder []string
	for _, e := range reg.Entities() {
		gotOrder = append(gotOrder, e.CUIT)
	}
	// A's entities first in A order, then B-only entities in B order.
	wantOrder := []string{"1", "2", "3", "4"}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("order = %v, want %v", gotOrder, wantOrder)
	}

	// Every cuit appears exactly once, with B's exclusive fields layered in.
	if got := reg.Get("2").Party; got != "Partido Z" {
		t.Errorf("Party = %q, want %q", got, "Partido Z")
	}
	if got := reg.Get("2").Name; got != "Beto" {
		t.Errorf("Name = %q, A must win on defined fields", got)
	}
}

func TestMerge_SlugCollisionsAreSuffixed(t *testing.T) {
	a := []*Entity{
		{CUIT: "1", Name: "Juan Pérez"},
		{CUIT: "2", Name: "Juan Perez"},
		{CUIT: "3", Name: "Juan Pèrez"},
	}
	reg, err := Merge(a, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	want := []string{"juan-perez", "juan-perez-2", "juan-perez-3"}
	for i, e := range reg.Entities() {
		if e.Slug != want[i] {
			t.Errorf("entity %d slug = %q, want %q", i, e.Slug, want[i])
		}
	}
}

func TestMerge_SlugsArePairwiseDistinct(t *testing.T) {
	a := []*Entity{
		{CUIT: "1", Name: "Ana López"},
		{CUIT: "2", Name: "Ana Lopez"},
		{CUIT: "3", Name: "Ana López-2"}, // base collides with a suffixed slug
		{CUIT: "4", Name: "Bruno"},
	}
	b := []*Entity{
		{CUIT: "5", Name: "Ana Lopez"},
	}
	reg, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	seen := make(map[string]bool)
	for _, e := range reg.Entities() {
		if seen[e.Slug] {
			t.Errorf("slug %q assigned twice", e.Slug)
		}
		seen[e.Slug] = true
		if reg.BySlug(e.Slug) != e {
			t.Errorf("BySlug(%q) does not round trip", e.Slug)
		}
	}
}

func TestMerge_EmptyCollections(t *testing.T) {
	reg, err := Merge(nil, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func TestMerge_MissingCUITIsFatal(t *testing.T) {
	if _, err := Merge([]*Entity{{Name: "Sin Cuit"}}, nil); err == nil {
		t.Error("Merge accepted an entity without a cuit")
	}
	if _, err := Merge(nil, []*Entity{{Name: "Sin Cuit"}}); err == nil {
		t.Error("Merge accepted a B entity without a cuit")
	}
}

func TestMerge_DoesNotMutateSources(t *testing.T) {
	a := []*Entity{{CUIT: "1", Name: "Ana"}}
	b := []*Entity{{CUIT: "1", Name: "Ana", Unit: "Ministerio X"}}
	if _, err := Merge(a, b); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if a[0].Unit != "" {
		t.Error("Merge mutated the A collection")
	}
	if a[0].Slug != "" || b[0].Slug != "" {
		t.Error("Merge assigned slugs on the source collections")
	}
}

func TestRegistry_Filter(t *testing.T) {
	a := []*Entity{
		{CUIT: "1", Name: "Zulema Díaz", Position: "Diputada", District: "Salta", Party: "A"},
		{CUIT: "2", Name: "Aldo Díaz", Position: "Senador", District: "Salta", Party: "B"},
		{CUIT: "3", Name: "Marta Ruiz", Position: "Diputada", District: "Chaco", Party: "A"},
	}
	reg, err := Merge(a, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	testCases := []struct {
		name                             string
		query, position, district, party string
		want                             []string
	}{
		{name: "all sorted by name", want: []string{"2", "3", "1"}},
		{name: "by name substring", query: "díaz", want: []string{"2", "1"}},
		{name: "by position", position: "diputada", want: []string{"3", "1"}},
		{name: "by district", district: "Salta", want: []string{"2", "1"}},
		{name: "combined", position: "Diputada", party: "A", district: "Chaco", want: []string{"3"}},
		{name: "no match", query: "nadie", want: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, e := range reg.Filter(tc.query, tc.position, tc.district, tc.party) {
				got = append(got, e.CUIT)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Filter() = %v, want %v", got, tc.want)
			}
		})
	}
}
