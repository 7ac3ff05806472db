package patient

import (
	"context"
	"strings"
	"testing"
	"time"
)

func demoPatient() *Patient {
	return &Patient{
		Name:          "John Smith",
		Email:         "john.smith@email.com",
		ContactNumber: "+1-555-0301",
		DateOfBirth:   time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC),
		Gender:        "male",
		Address:       "456 Patient St, City",
		EmergencyContact: EmergencyContact{
			Name: "Jane Smith", Relationship: "Spouse", ContactNumber: "+1-555-0302",
		},
		MedicalHistory: []string{"Hypertension", "Diabetes Type 2"},
		Allergies:      []string{"Penicillin"},
	}
}

func TestService_Create(t *testing.T) {
	svc := NewService(NewMemRepo())
	p := demoPatient()

	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(p.ID, "patient-") {
		t.Errorf("expected generated patient- id, got %q", p.ID)
	}
	if p.RegistrationDate.IsZero() {
		t.Error("expected registration date to be defaulted")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(NewMemRepo())

	p := demoPatient()
	p.Name = ""
	if err := svc.Create(context.Background(), p); err == nil {
		t.Error("expected error for missing name")
	}

	p = demoPatient()
	p.Gender = "unknown"
	if err := svc.Create(context.Background(), p); err == nil {
		t.Error("expected error for invalid gender")
	}
}

func TestService_GetByEmail(t *testing.T) {
	svc := NewService(NewMemRepo())
	p := demoPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := svc.GetByEmail(context.Background(), "john.smith@email.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != p.ID {
		t.Errorf("expected %q, got %q", p.ID, found.ID)
	}

	if _, err := svc.GetByEmail(context.Background(), "nobody@email.com"); err == nil {
		t.Error("expected error for unknown email")
	}
}
