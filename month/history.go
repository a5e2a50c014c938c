package month

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a specific month.
// It ensures that months are unique and the series is always sorted.
//
// The registry index tables (inflation, exchange rate) are sparse: not every
// month needs to be present.
type History[T float32 | float64 | string] struct {
	months []Month
	values []T
}

// Latest returns the latest month and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (on Month, value T) {
	last := len(h.months) - 1
	if last < 0 {
		return Month{}, *new(T)
	}
	return h.months[last], h.values[last]
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.months) }

// chronological is a private implementation to make this history chronologically sorted.
type chronological[T float32 | float64 | string] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.months[i].Before(s.months[j]) }

func (s chronological[T]) Swap(i, j int) {
	s.months[i], s.months[j] = s.months[j], s.months[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// sort sorts the history in chronological order.
func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history.
//
// An existing value at that month is overwritten, giving priority to the last data.
func (h *History[T]) Append(on Month, q T) *History[T] {
	if i := slices.Index(h.months, on); i >= 0 {
		h.values[i] = q
		return h
	}
	h.months, h.values = append(h.months, on), append(h.values, q)
	h.sort()
	return h
}

// Values returns an iterator over all month/value pairs, in chronological order.
func (h *History[T]) Values() iter.Seq2[Month, T] {
	return func(yield func(Month, T) bool) {
		for i, on := range h.months {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'on' and true, or the zero value and false.
func (h *History[T]) Get(on Month) (T, bool) {
	var value T
	i := slices.Index(h.months, on)
	if i >= 0 {
		return h.values[i], true
	}
	return value, false
}
