package patient

import "time"

// Patient is a patient profile with the contact and clinical background
// fields the dashboards surface.
type Patient struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	ContactNumber    string           `json:"contact_number"`
	DateOfBirth      time.Time        `json:"date_of_birth"`
	Gender           string           `json:"gender"`
	Address          string           `json:"address"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	MedicalHistory   []string         `json:"medical_history"`
	Allergies        []string         `json:"allergies"`
	RegistrationDate time.Time        `json:"registration_date"`
}

type EmergencyContact struct {
	Name          string `json:"name"`
	Relationship  string `json:"relationship"`
	ContactNumber string `json:"contact_number"`
}
