package doctor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/medboard/medboard/pkg/ids"
)

// ErrNotFound is returned when a doctor ID or email resolves to nothing.
var ErrNotFound = fmt.Errorf("doctor not found")

// MemRepo is the in-memory doctor store, insertion ordered.
type MemRepo struct {
	mu      sync.RWMutex
	order   []string
	doctors map[string]*Doctor
}

func NewMemRepo() *MemRepo {
	return &MemRepo{doctors: make(map[string]*Doctor)}
}

func (r *MemRepo) Create(_ context.Context, d *Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.ID == "" {
		d.ID = ids.NewUnique("doctor", func(id string) bool {
			_, taken := r.doctors[id]
			return taken
		})
	} else if _, taken := r.doctors[d.ID]; taken {
		return fmt.Errorf("doctor %s already exists", d.ID)
	}
	for i := range d.AvailabilitySlots {
		if d.AvailabilitySlots[i].ID == "" {
			d.AvailabilitySlots[i].ID = ids.New(fmt.Sprintf("slot-%d", i))
		}
		d.AvailabilitySlots[i].DoctorID = d.ID
	}
	for i := range d.ConsultationFees {
		if d.ConsultationFees[i].ID == "" {
			d.ConsultationFees[i].ID = ids.New(fmt.Sprintf("fee-%d", i))
		}
		d.ConsultationFees[i].DoctorID = d.ID
	}

	cp := *d
	r.doctors[d.ID] = &cp
	r.order = append(r.order, d.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *MemRepo) GetByEmail(_ context.Context, email string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.doctors[id].Email == email {
			cp := *r.doctors[id]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) List(_ context.Context) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Doctor, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.doctors[id]
		result = append(result, &cp)
	}
	return result, nil
}

// Search matches doctors by a case-insensitive term against name or
// specialization, optionally narrowed to an exact specialization.
func (r *MemRepo) Search(_ context.Context, term, specialization string) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term = strings.ToLower(term)
	var result []*Doctor
	for _, id := range r.order {
		d := r.doctors[id]
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Specialization), term) {
			continue
		}
		if specialization != "" && d.Specialization != specialization {
			continue
		}
		cp := *d
		result = append(result, &cp)
	}
	return result, nil
}

// Reset drops every record.
func (r *MemRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.doctors = make(map[string]*Doctor)
}
