// Package collision keeps the registry of names already handed out, so that
// generated chain names never repeat.
package collision

import (
	"github.com/mhemmit/gemmi/internal/hash"
)

// Tracker records names and answers membership queries.
//
// Names are bucketed by their xxHash64; a bucket holds every distinct name
// with that hash, so hash collisions never make two names look equal.
type Tracker struct {
	buckets map[uint64][]string // Hash → names with that hash
	names   []string            // Registration order
}

// NewTracker creates an empty tracker sized for capacity names.
func NewTracker(capacity int) *Tracker {
	if capacity < 0 {
		capacity = 0
	}

	return &Tracker{
		buckets: make(map[uint64][]string, capacity),
		names:   make([]string, 0, capacity),
	}
}

// Has reports whether name was tracked.
func (t *Tracker) Has(name string) bool {
	for _, n := range t.buckets[hash.ID(name)] {
		if n == name {
			return true
		}
	}

	return false
}

// Track records name. It returns false, leaving the tracker unchanged, when
// the name is already present.
func (t *Tracker) Track(name string) bool {
	h := hash.ID(name)
	for _, n := range t.buckets[h] {
		if n == name {
			return false
		}
	}

	t.buckets[h] = append(t.buckets[h], name)
	t.names = append(t.names, name)

	return true
}

// Names returns the tracked names in registration order.
// The returned slice must not be modified.
func (t *Tracker) Names() []string {
	return t.names
}
