// Package ids generates entity identifiers in the demo's prefix-plus-
// timestamp form, e.g. "appointment-1718040000000".
//
// Two IDs generated within the same millisecond collide. Stores that
// generate IDs under their own lock use NewUnique, which keeps the format
// but advances past taken values instead of papering over the collision
// with random suffixes.
package ids

import (
	"fmt"
	"time"
)

// New returns a fresh identifier for the given entity prefix.
func New(prefix string) string {
	return NewAt(prefix, time.Now())
}

// NewUnique returns a fresh identifier that taken reports free, advancing
// the timestamp one millisecond at a time past occupied values. The caller
// must hold whatever lock guards the keyspace taken consults.
func NewUnique(prefix string, taken func(string) bool) string {
	now := time.Now()
	id := NewAt(prefix, now)
	for taken(id) {
		now = now.Add(time.Millisecond)
		id = NewAt(prefix, now)
	}
	return id
}

// NewAt returns the identifier a call at the given instant would produce.
func NewAt(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}
