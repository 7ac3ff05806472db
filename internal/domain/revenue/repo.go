package revenue

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("revenue record not found")

// Repository stores the seeded historical aggregates. Current-month
// figures are derived from appointments at reporting time, not stored.
type Repository interface {
	Create(ctx context.Context, r *Revenue) error
	GetByID(ctx context.Context, id string) (*Revenue, error)
	List(ctx context.Context) ([]*Revenue, error)
	ListByHospital(ctx context.Context, hospitalID string) ([]*Revenue, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Revenue, error)
}
