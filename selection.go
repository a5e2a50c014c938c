package veedor

import (
	"errors"
	"net/url"
	"strings"
)

// MaxSelected is the cap on simultaneously compared entities.
const MaxSelected = 4

// Palette is the fixed ordered list of colors assigned to selected entities.
// It is longer than MaxSelected, so the first-unused rule can always find a
// free color.
var Palette = []string{"#2563eb", "#ef4444", "#16a34a", "#f59e0b", "#8b5cf6"}

// NeutralColor is the fallback for milestone groups that cannot be attributed
// to a single entity.
const NeutralColor = "#6b7280"

// Query parameters carrying the encoded selection. ParamSelection is the
// current name; ParamLegacy is kept for links minted by the single-select
// era of the dashboard. When both are present the newer name wins.
const (
	ParamSelection = "sel"
	ParamLegacy    = "legislador"
)

// ErrSelectionFull signals that a toggle was rejected because the selection
// is at capacity. It is a condition, not a failure: the selection is left
// unchanged and the caller owns any transient display of the signal.
var ErrSelectionFull = errors.New("selection is full")

// SelectionEntry is one selected entity and its assigned color.
type SelectionEntry struct {
	Entity *Entity
	Color  string
}

// Selection is the bounded, ordered, colored set of entities currently being
// compared.
type Selection struct {
	entries []SelectionEntry
}

// NewSelection returns an empty selection.
func NewSelection() *Selection { return &Selection{} }

// Len returns the number of selected entities.
func (s *Selection) Len() int { return len(s.entries) }

// Entries returns the ordered selection entries.
func (s *Selection) Entries() []SelectionEntry { return s.entries }

// Entities returns the selected entities in selection order.
func (s *Selection) Entities() []*Entity {
	out := make([]*Entity, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.Entity
	}
	return out
}

// Has reports whether the entity with this CUIT is selected.
func (s *Selection) Has(cuit string) bool {
	_, ok := s.ColorOf(cuit)
	return ok
}

// ColorOf returns the color assigned to the selected entity with this CUIT.
func (s *Selection) ColorOf(cuit string) (string, bool) {
	for _, entry := range s.entries {
		if entry.Entity.CUIT == cuit {
			return entry.Color, true
		}
	}
	return "", false
}

// Toggle flips the entity's membership. A selected entity is removed; the
// colors of the remaining entries are untouched. An unselected entity is
// appended with the first palette color not currently in use, unless the
// selection is at capacity, in which case ErrSelectionFull is returned and
// the selection is unchanged.
func (s *Selection) Toggle(e *Entity) error {
	for i, entry := range s.entries {
		if entry.Entity.CUIT == e.CUIT {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	if len(s.entries) >= MaxSelected {
		return ErrSelectionFull
	}
	s.entries = append(s.entries, SelectionEntry{Entity: e, Color: s.nextColor()})
	return nil
}

// Clear empties the selection.
func (s *Selection) Clear() { s.entries = nil }

// nextColor returns the first palette color not in use, falling back to a
// modulo pick if the palette were ever exhausted (it cannot be while
// MaxSelected <= len(Palette)).
func (s *Selection) nextColor() string {
	inUse := make(map[string]bool, len(s.entries))
	for _, entry := range s.entries {
		inUse[entry.Color] = true
	}
	for _, c := range Palette {
		if !inUse[c] {
			return c
		}
	}
	return Palette[len(s.entries)%len(Palette)]
}

// Encode serializes the selection as a comma-joined ordered list of slugs.
// An empty selection encodes as the empty string; the caller removes the
// query parameter entirely in that case.
func (s *Selection) Encode() string {
	slugs := make([]string, len(s.entries))
	for i, entry := range s.entries {
		slugs[i] = entry.Entity.Slug
	}
	return strings.Join(slugs, ",")
}

// DecodeSelection restores a selection from its encoded slug list. Unknown
// slugs are dropped silently, the result is truncated to MaxSelected, and
// colors are assigned by resulting list position.
func DecodeSelection(reg *Registry, encoded string) *Selection {
	s := NewSelection()
	if encoded == "" {
		return s
	}
	for _, slug := range strings.Split(encoded, ",") {
		e := reg.BySlug(strings.TrimSpace(slug))
		if e == nil {
			continue
		}
		if s.Has(e.CUIT) {
			continue
		}
		if s.Toggle(e) != nil {
			break // at capacity, remaining slugs are dropped
		}
	}
	return s
}

// DecodeSelectionQuery restores a selection from URL query values, honoring
// the parameter precedence: ParamSelection wins over ParamLegacy when both
// are present; an absent parameter means an empty selection.
func DecodeSelectionQuery(reg *Registry, q url.Values) *Selection {
	if q.Has(ParamSelection) {
		return DecodeSelection(reg, q.Get(ParamSelection))
	}
	return DecodeSelection(reg, q.Get(ParamLegacy))
}

// EncodeSelectionQuery writes the selection into URL query values, removing
// the parameters entirely when the selection is empty. The legacy parameter
// is always dropped: links are re-minted under the current name.
func EncodeSelectionQuery(s *Selection, q url.Values) {
	q.Del(ParamLegacy)
	if s.Len() == 0 {
		q.Del(ParamSelection)
		return
	}
	q.Set(ParamSelection, s.Encode())
}
