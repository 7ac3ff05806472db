package patient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/medboard/medboard/pkg/ids"
)

// ErrNotFound is returned when a patient ID or email resolves to nothing.
var ErrNotFound = fmt.Errorf("patient not found")

// MemRepo is the in-memory patient store, insertion ordered.
type MemRepo struct {
	mu       sync.RWMutex
	order    []string
	patients map[string]*Patient
}

func NewMemRepo() *MemRepo {
	return &MemRepo{patients: make(map[string]*Patient)}
}

func (r *MemRepo) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = ids.NewUnique("patient", func(id string) bool {
			_, taken := r.patients[id]
			return taken
		})
	} else if _, taken := r.patients[p.ID]; taken {
		return fmt.Errorf("patient %s already exists", p.ID)
	}
	if p.RegistrationDate.IsZero() {
		p.RegistrationDate = time.Now()
	}

	cp := *p
	r.patients[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemRepo) GetByEmail(_ context.Context, email string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.patients[id].Email == email {
			cp := *r.patients[id]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Patient, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.patients[id]
		result = append(result, &cp)
	}
	return result, nil
}

// Reset drops every record.
func (r *MemRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.patients = make(map[string]*Patient)
}
