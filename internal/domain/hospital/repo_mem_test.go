package hospital

import (
	"context"
	"fmt"
	"testing"
)

func TestMemRepo_Create_BurstsNeverOverwrite(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	const n = 50
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		h := &Hospital{Name: fmt.Sprintf("Clinic %d", i), Email: fmt.Sprintf("clinic-%d@example.com", i)}
		if err := repo.Create(ctx, h); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[h.ID] {
			t.Fatalf("create %d reused id %s", i, h.ID)
		}
		seen[h.ID] = true
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != n {
		t.Errorf("records = %d, want %d", len(all), n)
	}
}

func TestMemRepo_Create_RejectsDuplicateExplicitID(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, &Hospital{ID: "hospital-1", Name: "Central Medical Center"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if err := repo.Create(ctx, &Hospital{ID: "hospital-1", Name: "Imposter General"}); err == nil {
		t.Fatal("expected error for duplicate id")
	}

	kept, err := repo.GetByID(ctx, "hospital-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if kept.Name != "Central Medical Center" {
		t.Errorf("original record was replaced: %+v", kept)
	}
}
