package appointment

import "errors"

// Error kinds surfaced by the booking flow. Specific failures wrap one of
// these so callers can branch with errors.Is and handlers can map them to
// status codes: validation -> 400, conflict -> 409, not found -> 404.
var (
	ErrValidation = errors.New("invalid booking request")
	ErrConflict   = errors.New("booking conflict")
	ErrNotFound   = errors.New("not found")
)
