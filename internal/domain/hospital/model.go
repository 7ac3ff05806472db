package hospital

import "time"

// Hospital is a facility profile. It owns its departments: they are created
// and stored with the hospital and share its lifecycle.
type Hospital struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Address         string       `json:"address"`
	ContactNumber   string       `json:"contact_number"`
	Email           string       `json:"email"`
	EstablishedYear int          `json:"established_year"`
	TotalBeds       int          `json:"total_beds"`
	Departments     []Department `json:"departments"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Department belongs to exactly one hospital. The head doctor reference is
// weak: it names a doctor by ID and does not own the record.
type Department struct {
	ID              string   `json:"id"`
	HospitalID      string   `json:"hospital_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	HeadDoctorID    string   `json:"head_doctor_id,omitempty"`
	Specializations []string `json:"specializations"`
}
