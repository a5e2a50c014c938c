package veedor

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is the merged, deduplicated, stably-identified entity collection.
//
// Entities keep their final merge order: collection A's entities first (in A
// order, enriched from B), then B-only entities in B order. Every entity
// carries a unique slug.
type Registry struct {
	entities []*Entity
	byCUIT   map[string]*Entity
	bySlug   map[string]*Entity
}

// Merge reconciles two registry snapshots into one Registry.
//
// For each entity of a, a matching CUIT in b contributes its fields to fill
// the gaps of a's record (a wins on fields it already defines). Entities of b
// without a match in a are appended after all of a's entities, preserving b's
// order. Slugs are assigned over the final order; a colliding slug gets a
// "-N" suffix, N starting at 2 in encounter order.
//
// An entity without a CUIT, or a CUIT repeated within the same collection,
// is structurally invalid and aborts the merge.
func Merge(a, b []*Entity) (*Registry, error) {
	if err := checkCollection("legisladores", a); err != nil {
		return nil, err
	}
	if err := checkCollection("funcionarios", b); err != nil {
		return nil, err
	}

	byCUIT := make(map[string]*Entity, len(b))
	for _, e := range b {
		byCUIT[e.CUIT] = e
	}

	r := &Registry{
		entities: make([]*Entity, 0, len(a)+len(b)),
		byCUIT:   make(map[string]*Entity, len(a)+len(b)),
		bySlug:   make(map[string]*Entity),
	}

	for _, e := range a {
		merged := e.clone()
		if other, ok := byCUIT[e.CUIT]; ok {
			fillGaps(merged, other)
		}
		r.add(merged)
	}
	for _, e := range b {
		if _, taken := r.byCUIT[e.CUIT]; taken {
			continue // already merged into an A entity
		}
		r.add(e.clone())
	}
	return r, nil
}

func checkCollection(name string, list []*Entity) error {
	seen := make(map[string]bool, len(list))
	for i, e := range list {
		if e.CUIT == "" {
			return fmt.Errorf("invalid %s collection: entity %d (%q) has no cuit", name, i, e.Name)
		}
		if seen[e.CUIT] {
			return fmt.Errorf("invalid %s collection: cuit %s appears twice", name, e.CUIT)
		}
		seen[e.CUIT] = true
	}
	return nil
}

// fillGaps copies b's fields into a's empty ones. Fields already defined on a
// are never overwritten.
func fillGaps(a, b *Entity) {
	if a.Name == "" {
		a.Name = b.Name
	}
	if a.Party == "" {
		a.Party = b.Party
	}
	if a.District == "" {
		a.District = b.District
	}
	if a.Position == "" {
		a.Position = b.Position
	}
	if a.Unit == "" {
		a.Unit = b.Unit
	}
	if len(a.Sources) == 0 {
		a.Sources = append([]string(nil), b.Sources...)
	}
	if len(a.OfficePeriods) == 0 {
		a.OfficePeriods = append([]OfficePeriod(nil), b.OfficePeriods...)
	}
	if len(a.PersonalMilestones) == 0 {
		a.PersonalMilestones = append([]Milestone(nil), b.PersonalMilestones...)
	}
	if len(a.DebtHistory) == 0 {
		a.DebtHistory = append([]DebtRecord(nil), b.DebtHistory...)
	}
}

// add appends the entity and assigns its unique slug.
func (r *Registry) add(e *Entity) {
	base := Slugify(e.Name)
	if base == "" {
		// A nameless record still needs an address; the CUIT is the only
		// stable thing left.
		base = e.CUIT
	}
	slug := base
	for n := 2; ; n++ {
		if _, taken := r.bySlug[slug]; !taken {
			break
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	e.Slug = slug
	r.entities = append(r.entities, e)
	r.byCUIT[e.CUIT] = e
	r.bySlug[slug] = e
}

// Len returns the number of entities in the registry.
func (r *Registry) Len() int { return len(r.entities) }

// Entities returns the merged collection in its final order.
func (r *Registry) Entities() []*Entity { return r.entities }

// Get returns the entity with this CUIT, or nil if unknown.
func (r *Registry) Get(cuit string) *Entity { return r.byCUIT[cuit] }

// BySlug returns the entity addressed by this slug, or nil if unknown.
func (r *Registry) BySlug(slug string) *Entity { return r.bySlug[slug] }

// Filter returns the entities matching all the given facets, sorted by name.
//
// The query matches case-insensitively anywhere in the name; position,
// district and party must match exactly (position case-insensitively). Empty
// facets match everything.
func (r *Registry) Filter(query, position, district, party string) []*Entity {
	query = strings.ToLower(query)
	var out []*Entity
	for _, e := range r.entities {
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		if position != "" && !strings.EqualFold(e.Position, position) {
			continue
		}
		if district != "" && e.District != district {
			continue
		}
		if party != "" && e.Party != party {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Districts returns the sorted set of non-empty districts in the registry.
func (r *Registry) Districts() []string { return r.facet(func(e *Entity) string { return e.District }) }

// Parties returns the sorted set of non-empty parties in the registry.
func (r *Registry) Parties() []string { return r.facet(func(e *Entity) string { return e.Party }) }

func (r *Registry) facet(f func(*Entity) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range r.entities {
		v := strings.TrimSpace(f(e))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
