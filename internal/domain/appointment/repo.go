package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	List(ctx context.Context) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error)
	ListByHospital(ctx context.Context, hospitalID string) ([]*Appointment, error)
	// FindActive returns the appointment occupying (doctorID, date,
	// startTime) with a status that still holds the slot, or nil.
	FindActive(ctx context.Context, doctorID, date, startTime string) (*Appointment, error)
}
