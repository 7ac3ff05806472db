package hospital

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/medboard/medboard/pkg/ids"
)

// ErrNotFound is returned when a hospital ID resolves to nothing.
var ErrNotFound = fmt.Errorf("hospital not found")

// MemRepo is the in-memory hospital store. The whole system is memory
// resident for the process lifetime; insertion order is preserved.
type MemRepo struct {
	mu        sync.RWMutex
	order     []string
	hospitals map[string]*Hospital
}

func NewMemRepo() *MemRepo {
	return &MemRepo{hospitals: make(map[string]*Hospital)}
}

func (r *MemRepo) Create(_ context.Context, h *Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.ID == "" {
		h.ID = ids.NewUnique("hospital", func(id string) bool {
			_, taken := r.hospitals[id]
			return taken
		})
	} else if _, taken := r.hospitals[h.ID]; taken {
		return fmt.Errorf("hospital %s already exists", h.ID)
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	for i := range h.Departments {
		if h.Departments[i].ID == "" {
			h.Departments[i].ID = ids.New(fmt.Sprintf("dept-%d", i))
		}
		h.Departments[i].HospitalID = h.ID
	}

	cp := *h
	r.hospitals[h.ID] = &cp
	r.order = append(r.order, h.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.hospitals[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *MemRepo) List(_ context.Context) ([]*Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Hospital, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.hospitals[id]
		result = append(result, &cp)
	}
	return result, nil
}

// Reset drops every record. Used by the session lifecycle and by tests.
func (r *MemRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.hospitals = make(map[string]*Hospital)
}
