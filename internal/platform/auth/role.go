package auth

import "fmt"

// Role is the closed set of dashboard roles. Access checks match on the
// enumeration, never on free-form strings, so adding a role is an explicit
// code change.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// ParseRole validates a role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RolePatient:
		return RolePatient, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

func (r Role) String() string { return string(r) }

// User is the session identity fabricated at login. There is no user
// directory behind it; the login flow accepts any credentials.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Name       string `json:"name"`
	HospitalID string `json:"hospital_id,omitempty"`
}
