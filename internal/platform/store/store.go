// Package store bundles the in-memory repositories into a single unit
// with one lifecycle. The process owns exactly one Store; handlers reach
// it through the services it backs, never directly.
package store

import (
	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/doctor"
	"github.com/medboard/medboard/internal/domain/hospital"
	"github.com/medboard/medboard/internal/domain/patient"
	"github.com/medboard/medboard/internal/domain/revenue"
)

type Store struct {
	Hospitals    *hospital.MemRepo
	Doctors      *doctor.MemRepo
	Patients     *patient.MemRepo
	Appointments *appointment.MemRepo
	Revenues     *revenue.MemRepo
}

func New() *Store {
	return &Store{
		Hospitals:    hospital.NewMemRepo(),
		Doctors:      doctor.NewMemRepo(),
		Patients:     patient.NewMemRepo(),
		Appointments: appointment.NewMemRepo(),
		Revenues:     revenue.NewMemRepo(),
	}
}

// Reset drops every record in every collection. Exposed for tests and
// the sandbox reset endpoint.
func (s *Store) Reset() {
	s.Hospitals.Reset()
	s.Doctors.Reset()
	s.Patients.Reset()
	s.Appointments.Reset()
	s.Revenues.Reset()
}
