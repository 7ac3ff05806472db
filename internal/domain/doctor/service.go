package doctor

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	doctors Repository
	cal     Calendar
}

func NewService(doctors Repository, cal Calendar) *Service {
	return &Service{doctors: doctors, cal: cal}
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.Email == "" {
		return fmt.Errorf("email is required")
	}
	for _, fee := range d.ConsultationFees {
		if _, err := NewConsultationFee(fee.ID, fee.DoctorID, fee.HospitalID,
			fee.Amount, fee.HospitalShare, fee.DoctorShare); err != nil {
			return err
		}
	}
	for _, slot := range d.AvailabilitySlots {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			return fmt.Errorf("day_of_week must be 0-6, got %d", slot.DayOfWeek)
		}
		if _, err := ParseClock(slot.StartTime); err != nil {
			return err
		}
		if _, err := ParseClock(slot.EndTime); err != nil {
			return err
		}
	}
	d.TotalEarnings = 0
	return s.doctors.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id string) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*Doctor, error) {
	return s.doctors.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) Search(ctx context.Context, term, specialization string) ([]*Doctor, error) {
	return s.doctors.Search(ctx, term, specialization)
}

// Specializations returns the distinct specializations in first-seen order,
// feeding the booking flow's filter dropdown.
func (s *Service) Specializations(ctx context.Context) ([]string, error) {
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var specs []string
	for _, d := range doctors {
		if d.Specialization == "" {
			continue
		}
		if _, dup := seen[d.Specialization]; dup {
			continue
		}
		seen[d.Specialization] = struct{}{}
		specs = append(specs, d.Specialization)
	}
	return specs, nil
}

// BookingDates returns the candidate dates of the configured horizon.
func (s *Service) BookingDates(now time.Time) []time.Time {
	return s.cal.CandidateDates(now)
}

// DaySlots returns the workday's slot grid, independent of any doctor.
func (s *Service) DaySlots() []string {
	return s.cal.DaySlots()
}

// Availability resolves a doctor's bookable start times on a concrete date.
func (s *Service) Availability(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	d, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return BookableTimes(d.AvailabilitySlots, date), nil
}
