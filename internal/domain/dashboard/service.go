// Package dashboard assembles the role-specific summary views. It owns no
// state of its own; every figure is derived from the domain stores at
// request time.
package dashboard

import (
	"context"
	"time"

	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/doctor"
	"github.com/medboard/medboard/internal/domain/hospital"
	"github.com/medboard/medboard/internal/domain/patient"
	"github.com/medboard/medboard/internal/domain/revenue"
)

type Service struct {
	hospitals    *hospital.Service
	doctors      *doctor.Service
	patients     *patient.Service
	appointments *appointment.Service
	revenues     *revenue.Service
	now          func() time.Time
}

func NewService(hospitals *hospital.Service, doctors *doctor.Service, patients *patient.Service,
	appointments *appointment.Service, revenues *revenue.Service) *Service {
	return &Service{
		hospitals:    hospitals,
		doctors:      doctors,
		patients:     patients,
		appointments: appointments,
		revenues:     revenues,
		now:          time.Now,
	}
}

// AdminSummary is the hospital administrator's landing view.
type AdminSummary struct {
	HospitalID          string                        `json:"hospital_id"`
	TotalDoctors        int                           `json:"total_doctors"`
	MonthlyAppointments int                           `json:"monthly_appointments"`
	MonthlyRevenue      int                           `json:"monthly_revenue"`
	HospitalShare       int                           `json:"hospital_share"`
	DoctorShare         int                           `json:"doctor_share"`
	DepartmentBreakdown []revenue.DepartmentBreakdown `json:"department_breakdown"`
}

// AdminSummary aggregates a hospital's headline figures for the current
// month.
func (s *Service) AdminSummary(ctx context.Context, hospitalID string) (*AdminSummary, error) {
	if _, err := s.hospitals.Get(ctx, hospitalID); err != nil {
		return nil, err
	}

	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, err
	}
	affiliated := 0
	for _, d := range doctors {
		for _, aff := range d.HospitalAffiliations {
			if aff.HospitalID == hospitalID && aff.IsActive {
				affiliated++
				break
			}
		}
	}

	now := s.now()
	report, err := s.revenues.MonthlyReport(ctx, hospitalID, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}

	appts, err := s.appointments.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	monthPrefix := now.Format("2006-01")
	monthly := 0
	for _, a := range appts {
		if len(a.Date) >= len(monthPrefix) && a.Date[:len(monthPrefix)] == monthPrefix {
			monthly++
		}
	}

	return &AdminSummary{
		HospitalID:          hospitalID,
		TotalDoctors:        affiliated,
		MonthlyAppointments: monthly,
		MonthlyRevenue:      report.TotalRevenue,
		HospitalShare:       report.HospitalShare,
		DoctorShare:         report.DoctorShare,
		DepartmentBreakdown: report.DepartmentBreakdown,
	}, nil
}

// DoctorSummary is the practitioner's landing view.
type DoctorSummary struct {
	DoctorID      string                     `json:"doctor_id"`
	Today         []*appointment.Appointment `json:"today"`
	Upcoming      []*appointment.Appointment `json:"upcoming"`
	TotalPatients int                        `json:"total_patients"`
	Earnings      []revenue.HospitalEarnings `json:"earnings"`
}

// DoctorSummary gathers today's schedule, upcoming scheduled visits, the
// distinct patient count, and per-hospital earnings.
func (s *Service) DoctorSummary(ctx context.Context, doctorID string) (*DoctorSummary, error) {
	if _, err := s.doctors.Get(ctx, doctorID); err != nil {
		return nil, err
	}
	appts, err := s.appointments.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	today := s.now().Format("2006-01-02")
	summary := &DoctorSummary{
		DoctorID: doctorID,
		Today:    []*appointment.Appointment{},
		Upcoming: []*appointment.Appointment{},
	}
	patients := map[string]struct{}{}
	for _, a := range appts {
		patients[a.PatientID] = struct{}{}
		if a.Date == today {
			summary.Today = append(summary.Today, a)
		}
		if a.Date > today && a.Status == appointment.StatusScheduled {
			summary.Upcoming = append(summary.Upcoming, a)
		}
	}
	summary.TotalPatients = len(patients)

	earnings, err := s.revenues.DoctorEarnings(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	summary.Earnings = earnings
	return summary, nil
}

// PatientSummary is the patient's landing view.
type PatientSummary struct {
	PatientID     string                     `json:"patient_id"`
	Upcoming      []*appointment.Appointment `json:"upcoming"`
	Past          []*appointment.Appointment `json:"past"`
	Next          *appointment.Appointment   `json:"next,omitempty"`
	Prescriptions int                        `json:"prescriptions"`
	Allergies     []string                   `json:"allergies"`
}

// PatientSummary splits the patient's appointments into upcoming
// scheduled visits and completed history, and counts prescriptions
// issued so far.
func (s *Service) PatientSummary(ctx context.Context, patientID string) (*PatientSummary, error) {
	p, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	appts, err := s.appointments.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	today := s.now().Format("2006-01-02")
	summary := &PatientSummary{
		PatientID: patientID,
		Upcoming:  []*appointment.Appointment{},
		Past:      []*appointment.Appointment{},
		Allergies: p.Allergies,
	}
	for _, a := range appts {
		switch {
		case a.Status == appointment.StatusScheduled && a.Date >= today:
			summary.Upcoming = append(summary.Upcoming, a)
			if summary.Next == nil || a.Date < summary.Next.Date ||
				(a.Date == summary.Next.Date && a.StartTime < summary.Next.StartTime) {
				summary.Next = a
			}
		case a.Status == appointment.StatusCompleted:
			summary.Past = append(summary.Past, a)
			if a.Prescription != "" {
				summary.Prescriptions++
			}
		}
	}
	return summary, nil
}
