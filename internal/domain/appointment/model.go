package appointment

import (
	"fmt"
	"time"
)

// Status is the appointment lifecycle state. Scheduled is the only
// non-terminal state; every other state is final.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// ParseStatus validates a status string against the closed set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
}

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s != StatusScheduled
}

// CanTransitionTo reports whether the state machine permits s -> next.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	return s == StatusScheduled
}

// Appointment is the central transactional record. It is jointly
// referenced by patient, doctor, and hospital; the appointment store
// itself is the single source of truth. The consultation fee is a
// snapshot taken at booking time and never tracks later fee changes.
// Dates are civil "YYYY-MM-DD" strings and times are HH:MM clock strings,
// matching the booking flow's wire contract.
type Appointment struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	HospitalID      string    `json:"hospital_id"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Status          Status    `json:"status"`
	ConsultationFee int       `json:"consultation_fee"`
	Symptoms        string    `json:"symptoms"`
	Diagnosis       string    `json:"diagnosis,omitempty"`
	Prescription    string    `json:"prescription,omitempty"`
	FollowUpDate    string    `json:"follow_up_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Patch is a partial appointment update. Nil fields are left untouched.
type Patch struct {
	Status       *Status `json:"status,omitempty"`
	Symptoms     *string `json:"symptoms,omitempty"`
	Diagnosis    *string `json:"diagnosis,omitempty"`
	Prescription *string `json:"prescription,omitempty"`
	FollowUpDate *string `json:"follow_up_date,omitempty"`
}

// BookingRequest carries the booking session's required fields through the
// flow explicitly rather than as a loose bag of selections.
type BookingRequest struct {
	PatientID  string `json:"patient_id"`
	DoctorID   string `json:"doctor_id"`
	HospitalID string `json:"hospital_id,omitempty"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	Symptoms   string `json:"symptoms"`
}
