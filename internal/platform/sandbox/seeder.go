// Package sandbox seeds the in-memory store with demo data: the fixed
// records every demo walkthrough relies on, plus optional volume
// generation for load-ish testing and richer dashboards. Generation is
// reproducible for a given seed.
package sandbox

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/doctor"
	"github.com/medboard/medboard/internal/domain/hospital"
	"github.com/medboard/medboard/internal/domain/patient"
	"github.com/medboard/medboard/internal/domain/revenue"
	"github.com/medboard/medboard/internal/platform/auth"
	"github.com/medboard/medboard/internal/platform/store"
)

// SeedConfig controls the volume of generated demo data. Zero counts mean
// only the fixed records are seeded.
type SeedConfig struct {
	DoctorCount           int   `json:"doctor_count"`
	PatientCount          int   `json:"patient_count"`
	AppointmentsPerDoctor int   `json:"appointments_per_doctor"`
	Seed                  int64 `json:"seed"`
}

func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		DoctorCount:           5,
		PatientCount:          20,
		AppointmentsPerDoctor: 10,
	}
}

type Seeder struct {
	store *store.Store
	log   zerolog.Logger
}

func NewSeeder(st *store.Store, log zerolog.Logger) *Seeder {
	return &Seeder{store: st, log: log}
}

// SeedDemo inserts the fixed demo records: one hospital with two
// departments, one cardiologist with a Monday availability template and a
// 30/70 fee agreement, one patient, one completed appointment, and the
// January 2024 revenue aggregate.
func (s *Seeder) SeedDemo(ctx context.Context) error {
	h := &hospital.Hospital{
		ID:              "hospital-1",
		Name:            "Central Medical Center",
		Address:         "123 Healthcare Ave, Medical District",
		ContactNumber:   "+1-555-0101",
		Email:           "info@centralmedical.com",
		EstablishedYear: 1985,
		TotalBeds:       250,
		Departments: []hospital.Department{
			{
				ID:              "dept-1",
				HospitalID:      "hospital-1",
				Name:            "Cardiology",
				Description:     "Heart and cardiovascular care",
				Specializations: []string{"General Cardiology", "Interventional Cardiology"},
			},
			{
				ID:              "dept-2",
				HospitalID:      "hospital-1",
				Name:            "Neurology",
				Description:     "Neurological disorders and brain health",
				Specializations: []string{"General Neurology", "Neurosurgery"},
			},
		},
		CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := s.store.Hospitals.Create(ctx, h); err != nil {
		return fmt.Errorf("seeding hospital: %w", err)
	}

	d := &doctor.Doctor{
		ID:                "doctor-1",
		Name:              "Dr. Sarah Johnson",
		Email:             "sarah.johnson@centralmedical.com",
		ContactNumber:     "+1-555-0201",
		Specialization:    "Cardiology",
		YearsOfExperience: 12,
		Qualification:     "MD, FACC",
		LicenseNumber:     "MD12345",
		HospitalAffiliations: []doctor.HospitalAffiliation{
			{HospitalID: "hospital-1", DepartmentID: "dept-1",
				JoinDate: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
		},
		AvailabilitySlots: []doctor.AvailabilitySlot{
			{ID: "slot-1", DoctorID: "doctor-1", HospitalID: "hospital-1",
				DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30, IsActive: true},
		},
		ConsultationFees: []doctor.ConsultationFee{
			{ID: "fee-1", DoctorID: "doctor-1", HospitalID: "hospital-1",
				Amount: 200, HospitalShare: 30, DoctorShare: 70},
		},
		TotalEarnings: 15000,
	}
	if err := s.store.Doctors.Create(ctx, d); err != nil {
		return fmt.Errorf("seeding doctor: %w", err)
	}

	p := &patient.Patient{
		ID:            "patient-1",
		Name:          "John Smith",
		Email:         "john.smith@email.com",
		ContactNumber: "+1-555-0301",
		DateOfBirth:   time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC),
		Gender:        "male",
		Address:       "456 Patient St, City",
		EmergencyContact: patient.EmergencyContact{
			Name:          "Jane Smith",
			Relationship:  "Spouse",
			ContactNumber: "+1-555-0302",
		},
		MedicalHistory:   []string{"Hypertension", "Diabetes Type 2"},
		Allergies:        []string{"Penicillin"},
		RegistrationDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := s.store.Patients.Create(ctx, p); err != nil {
		return fmt.Errorf("seeding patient: %w", err)
	}

	a := &appointment.Appointment{
		ID:              "appointment-1",
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		HospitalID:      "hospital-1",
		Date:            "2024-01-15",
		StartTime:       "10:00",
		EndTime:         "10:30",
		Status:          appointment.StatusCompleted,
		ConsultationFee: 200,
		Symptoms:        "Chest pain, shortness of breath",
		Diagnosis:       "Mild angina, requires monitoring",
		Prescription:    "Aspirin 81mg daily, follow-up in 2 weeks",
		CreatedAt:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := s.store.Appointments.Create(ctx, a); err != nil {
		return fmt.Errorf("seeding appointment: %w", err)
	}

	r := &revenue.Revenue{
		ID:                 "revenue-1",
		HospitalID:         "hospital-1",
		DoctorID:           "doctor-1",
		Month:              1,
		Year:               2024,
		TotalConsultations: 45,
		TotalRevenue:       9000,
		HospitalShare:      2700,
		DoctorShare:        6300,
		DepartmentBreakdown: []revenue.DepartmentBreakdown{
			{DepartmentID: "dept-1", Revenue: 9000, Consultations: 45},
		},
	}
	if err := s.store.Revenues.Create(ctx, r); err != nil {
		return fmt.Errorf("seeding revenue: %w", err)
	}

	s.log.Info().Msg("seeded fixed demo records")
	return nil
}

var (
	firstNames      = []string{"Emily", "Michael", "Priya", "Carlos", "Aisha", "David", "Mei", "Omar", "Anna", "James"}
	lastNames       = []string{"Chen", "Patel", "Garcia", "Kim", "Okafor", "Brown", "Nguyen", "Ali", "Novak", "Wilson"}
	specializations = []string{"Cardiology", "Neurology", "Pediatrics", "Orthopedics", "Dermatology"}
)

// SeedVolume generates additional doctors, patients, and appointments on
// top of the fixed records. The same config always produces the same
// data.
func (s *Seeder) SeedVolume(ctx context.Context, cfg SeedConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	doctorIDs := make([]string, 0, cfg.DoctorCount)
	for i := 0; i < cfg.DoctorCount; i++ {
		id := fmt.Sprintf("doctor-gen-%d", i+1)
		name := fmt.Sprintf("Dr. %s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])
		fee := 100 + rng.Intn(5)*50
		hospitalShare := 20 + rng.Intn(4)*10

		d := &doctor.Doctor{
			ID:                id,
			Name:              name,
			Email:             fmt.Sprintf("%s@centralmedical.com", id),
			Specialization:    specializations[rng.Intn(len(specializations))],
			YearsOfExperience: 3 + rng.Intn(25),
			HospitalAffiliations: []doctor.HospitalAffiliation{
				{HospitalID: "hospital-1", DepartmentID: "dept-1",
					JoinDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
			},
			AvailabilitySlots: []doctor.AvailabilitySlot{
				{ID: id + "-slot", DoctorID: id, HospitalID: "hospital-1",
					DayOfWeek: 1 + rng.Intn(5), StartTime: "09:00", EndTime: "17:00",
					SlotDuration: 30, IsActive: true},
			},
			ConsultationFees: []doctor.ConsultationFee{
				{ID: id + "-fee", DoctorID: id, HospitalID: "hospital-1",
					Amount: fee, HospitalShare: hospitalShare, DoctorShare: 100 - hospitalShare},
			},
		}
		if err := s.store.Doctors.Create(ctx, d); err != nil {
			return fmt.Errorf("seeding generated doctor: %w", err)
		}
		doctorIDs = append(doctorIDs, id)
	}

	patientIDs := make([]string, 0, cfg.PatientCount)
	for i := 0; i < cfg.PatientCount; i++ {
		id := fmt.Sprintf("patient-gen-%d", i+1)
		name := fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])
		p := &patient.Patient{
			ID:               id,
			Name:             name,
			Email:            fmt.Sprintf("%s@email.com", id),
			Gender:           []string{"male", "female", "other"}[rng.Intn(3)],
			RegistrationDate: time.Date(2023, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC),
		}
		if err := s.store.Patients.Create(ctx, p); err != nil {
			return fmt.Errorf("seeding generated patient: %w", err)
		}
		patientIDs = append(patientIDs, id)
	}

	if len(doctorIDs) == 0 || len(patientIDs) == 0 {
		return nil
	}

	statuses := []appointment.Status{
		appointment.StatusCompleted, appointment.StatusCompleted, appointment.StatusCompleted,
		appointment.StatusScheduled, appointment.StatusCancelled, appointment.StatusNoShow,
	}
	n := 0
	for _, doctorID := range doctorIDs {
		for i := 0; i < cfg.AppointmentsPerDoctor; i++ {
			n++
			day := time.Date(2024, time.Month(1+rng.Intn(6)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
			startMinutes := 9*60 + rng.Intn(16)*30
			a := &appointment.Appointment{
				ID:              fmt.Sprintf("appointment-gen-%d", n),
				PatientID:       patientIDs[rng.Intn(len(patientIDs))],
				DoctorID:        doctorID,
				HospitalID:      "hospital-1",
				Date:            day.Format("2006-01-02"),
				StartTime:       doctor.FormatClock(startMinutes),
				EndTime:         doctor.FormatClock(startMinutes + 30),
				Status:          statuses[rng.Intn(len(statuses))],
				ConsultationFee: 100 + rng.Intn(5)*50,
				Symptoms:        "Routine consultation",
			}
			if err := s.store.Appointments.Create(ctx, a); err != nil {
				return fmt.Errorf("seeding generated appointment: %w", err)
			}
		}
	}

	s.log.Info().
		Int("doctors", len(doctorIDs)).
		Int("patients", len(patientIDs)).
		Int("appointments", n).
		Msg("seeded generated volume")
	return nil
}

// Handler exposes the sandbox lifecycle over HTTP for demo environments.
type Handler struct {
	seeder *Seeder
}

func NewHandler(seeder *Seeder) *Handler {
	return &Handler{seeder: seeder}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/sandbox/seed", h.Seed, auth.RequireRole(auth.RoleAdmin))
	api.POST("/sandbox/reset", h.Reset, auth.RequireRole(auth.RoleAdmin))
}

// Seed wipes the store and reloads it: fixed records always, generated
// volume per the posted config (defaults when the body is empty).
func (h *Handler) Seed(c echo.Context) error {
	cfg := DefaultSeedConfig()
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&cfg); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	ctx := c.Request().Context()
	h.seeder.store.Reset()
	if err := h.seeder.SeedDemo(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.seeder.SeedVolume(ctx, cfg); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "seeded"})
}

// Reset empties every collection.
func (h *Handler) Reset(c echo.Context) error {
	h.seeder.store.Reset()
	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}
