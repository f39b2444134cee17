// This file implements the insertion-ordered position multimap shared by
// modification, link and substituent storage.
package core

// Entry pairs an attachment position with its stored value.
type Entry[V any] struct {
	Position int
	Value    V
}

// MultiMap is an insertion-ordered multimap from backbone position to
// values. Several values may share a position, and UnknownPosition is an
// ordinary key. Iteration order is insertion order, which keeps traversal,
// equality and rendering deterministic.
//
// The zero value is not usable; call NewMultiMap.
type MultiMap[V any] struct {
	entries []Entry[V]
}

// NewMultiMap returns an empty MultiMap.
func NewMultiMap[V any]() *MultiMap[V] {
	return &MultiMap[V]{}
}

// Append stores value at position, after all existing entries.
func (m *MultiMap[V]) Append(position int, value V) {
	m.entries = append(m.entries, Entry[V]{Position: position, Value: value})
}

// Get returns all values stored at position, in insertion order.
func (m *MultiMap[V]) Get(position int) []V {
	var out []V
	for _, e := range m.entries {
		if e.Position == position {
			out = append(out, e.Value)
		}
	}

	return out
}

// CountAt returns the number of values stored at position.
func (m *MultiMap[V]) CountAt(position int) int {
	n := 0
	for _, e := range m.entries {
		if e.Position == position {
			n++
		}
	}

	return n
}

// Len returns the total number of stored values.
func (m *MultiMap[V]) Len() int { return len(m.entries) }

// Items returns the entries in insertion order. The slice is shared; do not
// mutate it.
func (m *MultiMap[V]) Items() []Entry[V] { return m.entries }

// Values returns all stored values in insertion order.
func (m *MultiMap[V]) Values() []V {
	out := make([]V, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Value
	}

	return out
}

// Positions returns the position of every entry in insertion order,
// including repeats.
func (m *MultiMap[V]) Positions() []int {
	out := make([]int, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Position
	}

	return out
}

// Delete removes the first entry at position for which match returns true
// and reports whether anything was removed.
func (m *MultiMap[V]) Delete(position int, match func(V) bool) bool {
	for i, e := range m.entries {
		if e.Position == position && match(e.Value) {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)

			return true
		}
	}

	return false
}

// Clone returns a shallow copy: entries are copied, values are shared.
func (m *MultiMap[V]) Clone() *MultiMap[V] {
	out := &MultiMap[V]{entries: make([]Entry[V], len(m.entries))}
	copy(out.entries, m.entries)

	return out
}
