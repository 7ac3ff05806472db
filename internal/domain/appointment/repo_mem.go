package appointment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/medboard/medboard/pkg/ids"
)

// MemRepo is the flat in-memory appointment store. Records are appended
// and mutated in place, never deleted; insertion order is preserved.
type MemRepo struct {
	mu           sync.RWMutex
	order        []string
	appointments map[string]*Appointment
}

func NewMemRepo() *MemRepo {
	return &MemRepo{appointments: make(map[string]*Appointment)}
}

func (r *MemRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		a.ID = ids.NewUnique("appointment", func(id string) bool {
			_, taken := r.appointments[id]
			return taken
		})
	} else if _, taken := r.appointments[a.ID]; taken {
		return fmt.Errorf("%w: appointment %s already exists", ErrConflict, a.ID)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	cp := *a
	r.appointments[a.ID] = &cp
	r.order = append(r.order, a.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}
	cp := *a
	return &cp, nil
}

func (r *MemRepo) Update(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[a.ID]; !ok {
		return fmt.Errorf("%w: appointment %s", ErrNotFound, a.ID)
	}
	cp := *a
	r.appointments[a.ID] = &cp
	return nil
}

func (r *MemRepo) List(_ context.Context) ([]*Appointment, error) {
	return r.listWhere(func(*Appointment) bool { return true })
}

func (r *MemRepo) ListByPatient(_ context.Context, patientID string) ([]*Appointment, error) {
	return r.listWhere(func(a *Appointment) bool { return a.PatientID == patientID })
}

func (r *MemRepo) ListByDoctor(_ context.Context, doctorID string) ([]*Appointment, error) {
	return r.listWhere(func(a *Appointment) bool { return a.DoctorID == doctorID })
}

func (r *MemRepo) ListByHospital(_ context.Context, hospitalID string) ([]*Appointment, error) {
	return r.listWhere(func(a *Appointment) bool { return a.HospitalID == hospitalID })
}

func (r *MemRepo) FindActive(_ context.Context, doctorID, date, startTime string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		a := r.appointments[id]
		if a.DoctorID != doctorID || a.Date != date || a.StartTime != startTime {
			continue
		}
		// Cancelled and no-show appointments release the slot.
		if a.Status == StatusScheduled || a.Status == StatusCompleted {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemRepo) listWhere(keep func(*Appointment) bool) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Appointment
	for _, id := range r.order {
		if keep(r.appointments[id]) {
			cp := *r.appointments[id]
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
	r.appointments = make(map[string]*Appointment)
}
