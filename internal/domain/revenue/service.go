package revenue

import (
	"context"
	"fmt"
	"time"

	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/doctor"
)

// AppointmentSource is the slice of the appointment store the reporting
// flow reads. Aggregates are derived from completed appointments at call
// time rather than maintained incrementally.
type AppointmentSource interface {
	ListByHospital(ctx context.Context, hospitalID string) ([]*appointment.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*appointment.Appointment, error)
}

type DoctorDirectory interface {
	GetByID(ctx context.Context, id string) (*doctor.Doctor, error)
}

type Service struct {
	revenues     Repository
	appointments AppointmentSource
	doctors      DoctorDirectory
	defaultShare int
}

// NewService wires the revenue reporting flow. defaultShare is the
// hospital percentage applied when a doctor has no fee agreement for the
// hospital being reported.
func NewService(revenues Repository, appointments AppointmentSource, doctors DoctorDirectory, defaultShare int) *Service {
	return &Service{
		revenues:     revenues,
		appointments: appointments,
		doctors:      doctors,
		defaultShare: defaultShare,
	}
}

// MonthlyReport derives a hospital's aggregate for one month from its
// completed appointments. Each consultation is split by the treating
// doctor's agreement with the hospital and attributed to the department
// of the doctor's affiliation there.
func (s *Service) MonthlyReport(ctx context.Context, hospitalID string, year, month int) (*Revenue, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be 1-12, got %d", month)
	}

	appts, err := s.appointments.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	report := &Revenue{
		HospitalID:          hospitalID,
		Month:               month,
		Year:                year,
		DepartmentBreakdown: []DepartmentBreakdown{},
	}
	deptIdx := map[string]int{}

	for _, a := range appts {
		if a.Status != appointment.StatusCompleted {
			continue
		}
		date, err := time.Parse("2006-01-02", a.Date)
		if err != nil || date.Year() != year || int(date.Month()) != month {
			continue
		}

		share := s.defaultShare
		departmentID := ""
		if doc, err := s.doctors.GetByID(ctx, a.DoctorID); err == nil {
			if fee, ok := doc.FeeForHospital(hospitalID); ok {
				share = fee.HospitalShare
			}
			for _, aff := range doc.HospitalAffiliations {
				if aff.HospitalID == hospitalID {
					departmentID = aff.DepartmentID
					break
				}
			}
		}

		alloc := Allocate(a.ConsultationFee, share)
		report.TotalConsultations++
		report.TotalRevenue += a.ConsultationFee
		report.HospitalShare += alloc.HospitalAmount
		report.DoctorShare += alloc.DoctorAmount

		i, ok := deptIdx[departmentID]
		if !ok {
			i = len(report.DepartmentBreakdown)
			deptIdx[departmentID] = i
			report.DepartmentBreakdown = append(report.DepartmentBreakdown, DepartmentBreakdown{DepartmentID: departmentID})
		}
		report.DepartmentBreakdown[i].Revenue += a.ConsultationFee
		report.DepartmentBreakdown[i].Consultations++
	}

	return report, nil
}

// HospitalEarnings is one hospital's slice of a doctor's income.
type HospitalEarnings struct {
	HospitalID    string `json:"hospital_id"`
	Consultations int    `json:"consultations"`
	TotalRevenue  int    `json:"total_revenue"`
	DoctorAmount  int    `json:"doctor_amount"`
}

// DoctorEarnings derives a doctor's per-hospital earnings from their
// completed appointments, splitting each fee by the agreement with the
// appointment's hospital.
func (s *Service) DoctorEarnings(ctx context.Context, doctorID string) ([]HospitalEarnings, error) {
	appts, err := s.appointments.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	doc, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	var earnings []HospitalEarnings
	idx := map[string]int{}
	for _, a := range appts {
		if a.Status != appointment.StatusCompleted {
			continue
		}
		share := s.defaultShare
		if fee, ok := doc.FeeForHospital(a.HospitalID); ok {
			share = fee.HospitalShare
		}
		alloc := Allocate(a.ConsultationFee, share)

		i, ok := idx[a.HospitalID]
		if !ok {
			i = len(earnings)
			idx[a.HospitalID] = i
			earnings = append(earnings, HospitalEarnings{HospitalID: a.HospitalID})
		}
		earnings[i].Consultations++
		earnings[i].TotalRevenue += a.ConsultationFee
		earnings[i].DoctorAmount += alloc.DoctorAmount
	}
	return earnings, nil
}

// History lists the stored monthly aggregates, optionally narrowed to a
// hospital.
func (s *Service) History(ctx context.Context, hospitalID string) ([]*Revenue, error) {
	if hospitalID != "" {
		return s.revenues.ListByHospital(ctx, hospitalID)
	}
	return s.revenues.List(ctx)
}

func (s *Service) HistoryByDoctor(ctx context.Context, doctorID string) ([]*Revenue, error) {
	return s.revenues.ListByDoctor(ctx, doctorID)
}

// Record stores a monthly aggregate. Used by the demo seeder.
func (s *Service) Record(ctx context.Context, r *Revenue) error {
	if r.HospitalShare+r.DoctorShare != r.TotalRevenue {
		return fmt.Errorf("shares %d+%d do not sum to total revenue %d",
			r.HospitalShare, r.DoctorShare, r.TotalRevenue)
	}
	return s.revenues.Create(ctx, r)
}
