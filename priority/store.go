package priority

import "slices"

// store holds the live entries ordered by descending priority. Entries of
// equal priority keep insertion order.
type store[V any] struct {
	entries []*entry[V]
}

func newStore[V any](capacity int) store[V] {
	return store[V]{entries: make([]*entry[V], 0, capacity)}
}

func (s *store[V]) len() int {
	return len(s.entries)
}

// insertionIndex returns the index of the first entry with a priority
// strictly lower than p, or len when there is none. Placing a new entry there
// puts it behind every entry of the same priority.
func (s *store[V]) insertionIndex(p float64) int {
	for i, e := range s.entries {
		if e.priority < p {
			return i
		}
	}
	return len(s.entries)
}

// insertAt shifts entries at i and beyond one place back.
func (s *store[V]) insertAt(i int, e *entry[V]) {
	s.entries = slices.Insert(s.entries, i, e)
}

// removeAt shifts entries beyond i one place forward.
func (s *store[V]) removeAt(i int) *entry[V] {
	e := s.entries[i]
	s.entries = slices.Delete(s.entries, i, i+1)
	return e
}

func (s *store[V]) reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
