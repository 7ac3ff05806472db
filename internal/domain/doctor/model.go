package doctor

import (
	"fmt"
	"time"
)

// Doctor is a practitioner profile together with the agreements that make
// them bookable: hospital affiliations, weekly availability templates, and
// per-hospital consultation fees.
type Doctor struct {
	ID                   string                `json:"id"`
	Name                 string                `json:"name"`
	Email                string                `json:"email"`
	ContactNumber        string                `json:"contact_number"`
	Specialization       string                `json:"specialization"`
	YearsOfExperience    int                   `json:"years_of_experience"`
	Qualification        string                `json:"qualification"`
	LicenseNumber        string                `json:"license_number"`
	HospitalAffiliations []HospitalAffiliation `json:"hospital_affiliations"`
	AvailabilitySlots    []AvailabilitySlot    `json:"availability_slots"`
	ConsultationFees     []ConsultationFee     `json:"consultation_fees"`
	TotalEarnings        int                   `json:"total_earnings"`
}

// HospitalAffiliation joins a doctor to a hospital through a department.
// A doctor may hold several active affiliations at once.
type HospitalAffiliation struct {
	HospitalID   string    `json:"hospital_id"`
	DepartmentID string    `json:"department_id"`
	JoinDate     time.Time `json:"join_date"`
	IsActive     bool      `json:"is_active"`
}

// AvailabilitySlot is a recurring weekly template: it defines capacity for
// a weekday, not concrete bookings. Times are HH:MM clock strings and
// DayOfWeek follows time.Weekday numbering (0 = Sunday).
type AvailabilitySlot struct {
	ID           string `json:"id"`
	DoctorID     string `json:"doctor_id"`
	HospitalID   string `json:"hospital_id"`
	DayOfWeek    int    `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotDuration int    `json:"slot_duration"`
	IsActive     bool   `json:"is_active"`
}

// ConsultationFee is the per-hospital fee agreement for a doctor. The two
// share percentages always sum to 100; use NewConsultationFee to construct.
type ConsultationFee struct {
	ID            string `json:"id"`
	DoctorID      string `json:"doctor_id"`
	HospitalID    string `json:"hospital_id"`
	Amount        int    `json:"amount"`
	HospitalShare int    `json:"hospital_share"`
	DoctorShare   int    `json:"doctor_share"`
}

// NewConsultationFee builds a fee agreement, enforcing the share invariant
// at construction time.
func NewConsultationFee(id, doctorID, hospitalID string, amount, hospitalShare, doctorShare int) (ConsultationFee, error) {
	if amount < 0 {
		return ConsultationFee{}, fmt.Errorf("fee amount must not be negative, got %d", amount)
	}
	if hospitalShare < 0 || doctorShare < 0 {
		return ConsultationFee{}, fmt.Errorf("shares must not be negative, got %d/%d", hospitalShare, doctorShare)
	}
	if hospitalShare+doctorShare != 100 {
		return ConsultationFee{}, fmt.Errorf("hospital and doctor shares must sum to 100, got %d+%d", hospitalShare, doctorShare)
	}
	return ConsultationFee{
		ID:            id,
		DoctorID:      doctorID,
		HospitalID:    hospitalID,
		Amount:        amount,
		HospitalShare: hospitalShare,
		DoctorShare:   doctorShare,
	}, nil
}

// FeeForHospital returns the doctor's first configured fee for a hospital.
// The booking flow snapshots this amount; the boolean reports whether any
// agreement exists.
func (d *Doctor) FeeForHospital(hospitalID string) (ConsultationFee, bool) {
	for _, fee := range d.ConsultationFees {
		if fee.HospitalID == hospitalID {
			return fee, true
		}
	}
	return ConsultationFee{}, false
}

// ActiveAffiliation returns the doctor's first active affiliation, which
// the booking flow uses as the default hospital.
func (d *Doctor) ActiveAffiliation() (HospitalAffiliation, bool) {
	for _, aff := range d.HospitalAffiliations {
		if aff.IsActive {
			return aff, true
		}
	}
	return HospitalAffiliation{}, false
}
