package revenue

import "math"

// Revenue is a monthly aggregate of consultation income for a hospital,
// optionally narrowed to one doctor. The share fields always satisfy
// HospitalShare + DoctorShare == TotalRevenue.
type Revenue struct {
	ID                  string                `json:"id"`
	HospitalID          string                `json:"hospital_id"`
	DoctorID            string                `json:"doctor_id,omitempty"`
	Month               int                   `json:"month"`
	Year                int                   `json:"year"`
	TotalConsultations  int                   `json:"total_consultations"`
	TotalRevenue        int                   `json:"total_revenue"`
	HospitalShare       int                   `json:"hospital_share"`
	DoctorShare         int                   `json:"doctor_share"`
	DepartmentBreakdown []DepartmentBreakdown `json:"department_breakdown"`
}

// DepartmentBreakdown attributes a slice of a monthly aggregate to one
// department.
type DepartmentBreakdown struct {
	DepartmentID  string `json:"department_id"`
	Revenue       int    `json:"revenue"`
	Consultations int    `json:"consultations"`
}

// Allocation is the outcome of splitting one consultation fee.
type Allocation struct {
	HospitalAmount int `json:"hospital_amount"`
	DoctorAmount   int `json:"doctor_amount"`
}

// Allocate splits a consultation fee by the given hospital percentage.
// The hospital amount is rounded to the nearest unit and the doctor
// receives the remainder, so the two amounts always sum to the fee.
func Allocate(fee, hospitalShare int) Allocation {
	hospitalAmount := int(math.Round(float64(fee) * float64(hospitalShare) / 100))
	return Allocation{
		HospitalAmount: hospitalAmount,
		DoctorAmount:   fee - hospitalAmount,
	}
}
