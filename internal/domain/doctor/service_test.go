package doctor

import (
	"context"
	"testing"
	"time"
)

func demoDoctor() *Doctor {
	return &Doctor{
		ID:                "doctor-1",
		Name:              "Dr. Sarah Johnson",
		Email:             "sarah.johnson@centralmedical.com",
		ContactNumber:     "+1-555-0201",
		Specialization:    "Cardiology",
		YearsOfExperience: 12,
		Qualification:     "MD, FACC",
		LicenseNumber:     "MD12345",
		HospitalAffiliations: []HospitalAffiliation{
			{HospitalID: "hospital-1", DepartmentID: "dept-1",
				JoinDate: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
		},
		AvailabilitySlots: []AvailabilitySlot{
			{ID: "slot-1", DoctorID: "doctor-1", HospitalID: "hospital-1",
				DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30, IsActive: true},
		},
		ConsultationFees: []ConsultationFee{
			{ID: "fee-1", DoctorID: "doctor-1", HospitalID: "hospital-1",
				Amount: 200, HospitalShare: 30, DoctorShare: 70},
		},
	}
}

func newTestService(t *testing.T, doctors ...*Doctor) *Service {
	t.Helper()
	repo := NewMemRepo()
	svc := NewService(repo, testCalendar())
	for _, d := range doctors {
		if err := svc.Create(context.Background(), d); err != nil {
			t.Fatalf("seeding doctor: %v", err)
		}
	}
	return svc
}

func TestNewConsultationFee_Invariant(t *testing.T) {
	fee, err := NewConsultationFee("fee-1", "doctor-1", "hospital-1", 200, 30, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fee.HospitalShare+fee.DoctorShare != 100 {
		t.Errorf("shares must sum to 100, got %d", fee.HospitalShare+fee.DoctorShare)
	}

	if _, err := NewConsultationFee("fee-2", "doctor-1", "hospital-1", 200, 40, 70); err == nil {
		t.Error("expected error for shares summing to 110")
	}
	if _, err := NewConsultationFee("fee-3", "doctor-1", "hospital-1", 200, -10, 110); err == nil {
		t.Error("expected error for negative share")
	}
	if _, err := NewConsultationFee("fee-4", "doctor-1", "hospital-1", -5, 30, 70); err == nil {
		t.Error("expected error for negative amount")
	}
}

func TestService_Create_RejectsBadFeeSplit(t *testing.T) {
	d := demoDoctor()
	d.ConsultationFees[0].DoctorShare = 80 // 30+80 != 100

	svc := NewService(NewMemRepo(), testCalendar())
	if err := svc.Create(context.Background(), d); err == nil {
		t.Fatal("expected error for invalid fee split")
	}
}

func TestService_Create_RejectsBadAvailability(t *testing.T) {
	d := demoDoctor()
	d.AvailabilitySlots[0].DayOfWeek = 9

	svc := NewService(NewMemRepo(), testCalendar())
	if err := svc.Create(context.Background(), d); err == nil {
		t.Fatal("expected error for day_of_week out of range")
	}
}

func TestService_Create_ZeroesEarnings(t *testing.T) {
	d := demoDoctor()
	d.TotalEarnings = 99999

	svc := newTestService(t)
	if err := svc.Create(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TotalEarnings != 0 {
		t.Errorf("expected total earnings defaulted to 0, got %d", d.TotalEarnings)
	}
}

func TestService_Availability(t *testing.T) {
	svc := newTestService(t, demoDoctor())

	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	times, err := svc.Availability(context.Background(), "doctor-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 16 {
		t.Errorf("expected 16 times on an available Monday, got %d", len(times))
	}

	tuesday := monday.AddDate(0, 0, 1)
	times, err = svc.Availability(context.Background(), "doctor-1", tuesday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 0 {
		t.Errorf("expected no times on Tuesday, got %v", times)
	}
}

func TestService_Availability_UnknownDoctor(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Availability(context.Background(), "doctor-nope", time.Now())
	if err == nil {
		t.Fatal("expected error for unknown doctor")
	}
}

func TestService_Specializations(t *testing.T) {
	second := demoDoctor()
	second.ID = "doctor-2"
	second.Email = "other@centralmedical.com"
	second.Specialization = "Neurology"
	third := demoDoctor()
	third.ID = "doctor-3"
	third.Email = "third@centralmedical.com" // duplicate Cardiology

	svc := newTestService(t, demoDoctor(), second, third)

	specs, err := svc.Specializations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specs) != 2 || specs[0] != "Cardiology" || specs[1] != "Neurology" {
		t.Errorf("expected deduplicated [Cardiology Neurology], got %v", specs)
	}
}

func TestService_Search(t *testing.T) {
	second := demoDoctor()
	second.ID = "doctor-2"
	second.Email = "lee@centralmedical.com"
	second.Name = "Dr. Marcus Lee"
	second.Specialization = "Neurology"

	svc := newTestService(t, demoDoctor(), second)

	byName, err := svc.Search(context.Background(), "sarah", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != "doctor-1" {
		t.Errorf("expected doctor-1 by name, got %+v", byName)
	}

	bySpec, err := svc.Search(context.Background(), "", "Neurology")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bySpec) != 1 || bySpec[0].ID != "doctor-2" {
		t.Errorf("expected doctor-2 by specialization, got %+v", bySpec)
	}

	byTerm, err := svc.Search(context.Background(), "cardio", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byTerm) != 1 || byTerm[0].ID != "doctor-1" {
		t.Errorf("expected specialization term match, got %+v", byTerm)
	}
}

func TestDoctor_FeeForHospital(t *testing.T) {
	d := demoDoctor()

	fee, ok := d.FeeForHospital("hospital-1")
	if !ok || fee.Amount != 200 {
		t.Errorf("expected configured fee 200, got %+v ok=%v", fee, ok)
	}

	if _, ok := d.FeeForHospital("hospital-2"); ok {
		t.Error("expected no fee for unaffiliated hospital")
	}
}
