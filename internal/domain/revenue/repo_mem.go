package revenue

import (
	"context"
	"fmt"
	"sync"

	"github.com/medboard/medboard/pkg/ids"
)

type MemRepo struct {
	mu       sync.RWMutex
	order    []string
	revenues map[string]*Revenue
}

func NewMemRepo() *MemRepo {
	return &MemRepo{revenues: make(map[string]*Revenue)}
}

func (r *MemRepo) Create(_ context.Context, rev *Revenue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rev.ID == "" {
		rev.ID = ids.NewUnique("revenue", func(id string) bool {
			_, taken := r.revenues[id]
			return taken
		})
	} else if _, taken := r.revenues[rev.ID]; taken {
		return fmt.Errorf("revenue record %s already exists", rev.ID)
	}
	cp := *rev
	r.revenues[rev.ID] = &cp
	r.order = append(r.order, rev.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Revenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rev, ok := r.revenues[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	cp := *rev
	return &cp, nil
}

func (r *MemRepo) List(_ context.Context) ([]*Revenue, error) {
	return r.listWhere(func(*Revenue) bool { return true })
}

func (r *MemRepo) ListByHospital(_ context.Context, hospitalID string) ([]*Revenue, error) {
	return r.listWhere(func(rev *Revenue) bool { return rev.HospitalID == hospitalID })
}

func (r *MemRepo) ListByDoctor(_ context.Context, doctorID string) ([]*Revenue, error) {
	return r.listWhere(func(rev *Revenue) bool { return rev.DoctorID == doctorID })
}

func (r *MemRepo) listWhere(keep func(*Revenue) bool) ([]*Revenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Revenue
	for _, id := range r.order {
		if keep(r.revenues[id]) {
			cp := *r.revenues[id]
			result = append(result, &cp)
		}
	}
	return result, nil
}

// Reset drops every record.
func (r *MemRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.revenues = make(map[string]*Revenue)
}
