package ids

import (
	"testing"
	"time"
)

func TestNewAt(t *testing.T) {
	at := time.UnixMilli(1718040000000)
	got := NewAt("appointment", at)
	want := "appointment-1718040000000"
	if got != want {
		t.Errorf("NewAt() = %q, want %q", got, want)
	}
}

func TestNewAt_SameMillisecondCollides(t *testing.T) {
	// The timestamp scheme offers no uniqueness within a millisecond.
	// This pins the documented behavior rather than asserting a guarantee
	// the scheme does not make.
	at := time.UnixMilli(42)
	if NewAt("doctor", at) != NewAt("doctor", at) {
		t.Error("expected identical IDs for identical instants")
	}
}

func TestNewUnique_AdvancesPastTakenIDs(t *testing.T) {
	taken := map[string]bool{}
	var got []string
	for i := 0; i < 3; i++ {
		id := NewUnique("appointment", func(id string) bool { return taken[id] })
		taken[id] = true
		got = append(got, id)
	}

	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("NewUnique repeated %q", id)
		}
		seen[id] = true
	}
}

func TestNewUnique_FreeKeyspaceMatchesNew(t *testing.T) {
	id := NewUnique("patient", func(string) bool { return false })
	if id == "" || id[:8] != "patient-" {
		t.Errorf("unexpected id %q", id)
	}
}
