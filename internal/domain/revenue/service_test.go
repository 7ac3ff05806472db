package revenue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/doctor"
)

func TestAllocate_SplitsByPercentage(t *testing.T) {
	alloc := Allocate(200, 30)
	if alloc.HospitalAmount != 60 || alloc.DoctorAmount != 140 {
		t.Errorf("200 at 30%% = %d/%d, want 60/140", alloc.HospitalAmount, alloc.DoctorAmount)
	}
}

func TestAllocate_AmountsAlwaysSumToFee(t *testing.T) {
	cases := []struct{ fee, share int }{
		{200, 30}, {0, 30}, {1, 50}, {99, 33}, {175, 45}, {200, 0}, {200, 100},
	}
	for _, tc := range cases {
		alloc := Allocate(tc.fee, tc.share)
		if alloc.HospitalAmount+alloc.DoctorAmount != tc.fee {
			t.Errorf("Allocate(%d, %d) = %d+%d, does not sum to fee",
				tc.fee, tc.share, alloc.HospitalAmount, alloc.DoctorAmount)
		}
	}
}

type fakeDirectory struct {
	doctors map[string]*doctor.Doctor
}

func (f *fakeDirectory) GetByID(_ context.Context, id string) (*doctor.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, errors.New("doctor not found")
	}
	return d, nil
}

func demoDoctor() *doctor.Doctor {
	return &doctor.Doctor{
		ID:   "doctor-1",
		Name: "Dr. Sarah Johnson",
		HospitalAffiliations: []doctor.HospitalAffiliation{
			{HospitalID: "hospital-1", DepartmentID: "dept-1",
				JoinDate: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
		},
		ConsultationFees: []doctor.ConsultationFee{
			{ID: "fee-1", DoctorID: "doctor-1", HospitalID: "hospital-1",
				Amount: 200, HospitalShare: 30, DoctorShare: 70},
		},
	}
}

func completedAppointment(id, doctorID, hospitalID, date string, fee int) *appointment.Appointment {
	return &appointment.Appointment{
		ID:              id,
		PatientID:       "patient-1",
		DoctorID:        doctorID,
		HospitalID:      hospitalID,
		Date:            date,
		StartTime:       "10:00",
		EndTime:         "10:30",
		Status:          appointment.StatusCompleted,
		ConsultationFee: fee,
	}
}

func newTestService(t *testing.T, appts ...*appointment.Appointment) *Service {
	t.Helper()
	apptRepo := appointment.NewMemRepo()
	for _, a := range appts {
		if err := apptRepo.Create(context.Background(), a); err != nil {
			t.Fatalf("seeding appointment: %v", err)
		}
	}
	dir := &fakeDirectory{doctors: map[string]*doctor.Doctor{"doctor-1": demoDoctor()}}
	return NewService(NewMemRepo(), apptRepo, dir, 30)
}

func TestMonthlyReport_AggregatesCompletedAppointments(t *testing.T) {
	svc := newTestService(t,
		completedAppointment("a1", "doctor-1", "hospital-1", "2024-01-15", 200),
		completedAppointment("a2", "doctor-1", "hospital-1", "2024-01-22", 200),
	)

	report, err := svc.MonthlyReport(context.Background(), "hospital-1", 2024, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalConsultations != 2 {
		t.Errorf("consultations = %d, want 2", report.TotalConsultations)
	}
	if report.TotalRevenue != 400 {
		t.Errorf("total = %d, want 400", report.TotalRevenue)
	}
	if report.HospitalShare != 120 || report.DoctorShare != 280 {
		t.Errorf("split = %d/%d, want 120/280 at the doctor's 30/70 agreement",
			report.HospitalShare, report.DoctorShare)
	}
	if report.HospitalShare+report.DoctorShare != report.TotalRevenue {
		t.Error("shares must sum to total revenue")
	}
}

func TestMonthlyReport_DepartmentBreakdown(t *testing.T) {
	svc := newTestService(t,
		completedAppointment("a1", "doctor-1", "hospital-1", "2024-01-15", 200),
	)

	report, err := svc.MonthlyReport(context.Background(), "hospital-1", 2024, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.DepartmentBreakdown) != 1 {
		t.Fatalf("breakdown entries = %d, want 1", len(report.DepartmentBreakdown))
	}
	dept := report.DepartmentBreakdown[0]
	if dept.DepartmentID != "dept-1" || dept.Revenue != 200 || dept.Consultations != 1 {
		t.Errorf("unexpected breakdown: %+v", dept)
	}
}

func TestMonthlyReport_IgnoresOtherMonthsAndStatuses(t *testing.T) {
	scheduled := completedAppointment("a3", "doctor-1", "hospital-1", "2024-01-29", 200)
	scheduled.Status = appointment.StatusScheduled

	svc := newTestService(t,
		completedAppointment("a1", "doctor-1", "hospital-1", "2024-01-15", 200),
		completedAppointment("a2", "doctor-1", "hospital-1", "2024-02-05", 200),
		scheduled,
	)

	report, err := svc.MonthlyReport(context.Background(), "hospital-1", 2024, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalConsultations != 1 {
		t.Errorf("consultations = %d, want only January's completed visit", report.TotalConsultations)
	}
}

func TestMonthlyReport_DefaultShareWithoutAgreement(t *testing.T) {
	// doctor-2 has no fee agreement; the configured default split applies.
	a := completedAppointment("a1", "doctor-2", "hospital-1", "2024-01-15", 100)

	apptRepo := appointment.NewMemRepo()
	if err := apptRepo.Create(context.Background(), a); err != nil {
		t.Fatalf("seed: %v", err)
	}
	dir := &fakeDirectory{doctors: map[string]*doctor.Doctor{"doctor-2": {ID: "doctor-2"}}}
	svc := NewService(NewMemRepo(), apptRepo, dir, 40)

	report, err := svc.MonthlyReport(context.Background(), "hospital-1", 2024, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.HospitalShare != 40 || report.DoctorShare != 60 {
		t.Errorf("split = %d/%d, want default 40/60", report.HospitalShare, report.DoctorShare)
	}
}

func TestMonthlyReport_RejectsBadMonth(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.MonthlyReport(context.Background(), "hospital-1", 2024, 13); err == nil {
		t.Error("expected error for month 13")
	}
}

func TestDoctorEarnings_PerHospital(t *testing.T) {
	svc := newTestService(t,
		completedAppointment("a1", "doctor-1", "hospital-1", "2024-01-15", 200),
		completedAppointment("a2", "doctor-1", "hospital-2", "2024-01-16", 100),
	)

	earnings, err := svc.DoctorEarnings(context.Background(), "doctor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(earnings) != 2 {
		t.Fatalf("hospitals = %d, want 2", len(earnings))
	}
	// hospital-1 has a 30/70 agreement, hospital-2 falls back to the
	// configured 30 default.
	if earnings[0].HospitalID != "hospital-1" || earnings[0].DoctorAmount != 140 {
		t.Errorf("hospital-1 earnings = %+v, want doctor amount 140", earnings[0])
	}
	if earnings[1].HospitalID != "hospital-2" || earnings[1].DoctorAmount != 70 {
		t.Errorf("hospital-2 earnings = %+v, want doctor amount 70", earnings[1])
	}
}

func TestRecord_EnforcesShareInvariant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	bad := &Revenue{HospitalID: "hospital-1", Month: 1, Year: 2024,
		TotalRevenue: 9000, HospitalShare: 2700, DoctorShare: 6000}
	if err := svc.Record(ctx, bad); err == nil {
		t.Error("expected error when shares do not sum to total")
	}

	good := &Revenue{HospitalID: "hospital-1", Month: 1, Year: 2024,
		TotalRevenue: 9000, HospitalShare: 2700, DoctorShare: 6300}
	if err := svc.Record(ctx, good); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	stored, err := svc.History(ctx, "hospital-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(stored) != 1 || stored[0].ID == "" {
		t.Errorf("expected 1 stored record with generated id, got %+v", stored)
	}
}
