package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/medboard/medboard/internal/domain/doctor"
)

// DoctorDirectory is the slice of the doctor store the booking flow needs.
type DoctorDirectory interface {
	GetByID(ctx context.Context, id string) (*doctor.Doctor, error)
}

type Service struct {
	appointments Repository
	doctors      DoctorDirectory
	slotMinutes  int
	defaultFee   int
}

// NewService wires the booking flow. slotMinutes is the fixed appointment
// duration (the source hard-codes 30 regardless of the availability
// template's own duration; that behavior is kept) and defaultFee applies
// when a doctor has no fee agreement for the hospital.
func NewService(appointments Repository, doctors DoctorDirectory, slotMinutes, defaultFee int) *Service {
	return &Service{
		appointments: appointments,
		doctors:      doctors,
		slotMinutes:  slotMinutes,
		defaultFee:   defaultFee,
	}
}

// Book validates a booking request and admits a new scheduled appointment.
// Required fields missing -> ErrValidation; unknown doctor -> ErrNotFound;
// slot already held by a scheduled or completed appointment -> ErrConflict.
func (s *Service) Book(ctx context.Context, req BookingRequest) (*Appointment, error) {
	if req.DoctorID == "" {
		return nil, fmt.Errorf("%w: doctor is required", ErrValidation)
	}
	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if req.StartTime == "" {
		return nil, fmt.Errorf("%w: time is required", ErrValidation)
	}
	if req.PatientID == "" {
		return nil, fmt.Errorf("%w: patient is required", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, req.Date)
	}
	start, err := doctor.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time %q", ErrValidation, req.StartTime)
	}

	doc, err := s.doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("%w: doctor %s", ErrNotFound, req.DoctorID)
	}

	hospitalID := req.HospitalID
	if hospitalID == "" {
		if aff, ok := doc.ActiveAffiliation(); ok {
			hospitalID = aff.HospitalID
		}
	}

	existing, err := s.appointments.FindActive(ctx, req.DoctorID, req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: doctor %s already booked on %s at %s",
			ErrConflict, req.DoctorID, req.Date, req.StartTime)
	}

	fee := s.defaultFee
	if agreement, ok := doc.FeeForHospital(hospitalID); ok {
		fee = agreement.Amount
	}

	a := &Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		HospitalID:      hospitalID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         doctor.FormatClock(start + s.slotMinutes),
		Status:          StatusScheduled,
		ConsultationFee: fee,
		Symptoms:        req.Symptoms,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// Update merges a partial update into the appointment. Re-applying the
// same patch leaves the record unchanged. Status changes go through the
// state machine: scheduled may move to any terminal state, terminal
// states admit nothing new.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		next, err := ParseStatus(string(*patch.Status))
		if err != nil {
			return nil, err
		}
		if !a.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: appointment is already %s", ErrConflict, a.Status)
		}
		a.Status = next
	}
	if patch.Symptoms != nil {
		a.Symptoms = *patch.Symptoms
	}
	if patch.Diagnosis != nil {
		a.Diagnosis = *patch.Diagnosis
	}
	if patch.Prescription != nil {
		a.Prescription = *patch.Prescription
	}
	if patch.FollowUpDate != nil {
		if *patch.FollowUpDate != "" {
			if _, err := time.Parse("2006-01-02", *patch.FollowUpDate); err != nil {
				return nil, fmt.Errorf("%w: invalid follow-up date %q", ErrValidation, *patch.FollowUpDate)
			}
		}
		a.FollowUpDate = *patch.FollowUpDate
	}

	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Cancel moves an appointment to cancelled on behalf of its patient or
// the treating doctor.
func (s *Service) Cancel(ctx context.Context, id, actorID string) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorID != "" && actorID != a.PatientID && actorID != a.DoctorID {
		return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}
	status := StatusCancelled
	return s.Update(ctx, id, Patch{Status: &status})
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return s.appointments.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListByHospital(ctx context.Context, hospitalID string) ([]*Appointment, error) {
	return s.appointments.ListByHospital(ctx, hospitalID)
}
