package hospital

import (
	"context"
	"fmt"
)

type Service struct {
	hospitals Repository
}

func NewService(hospitals Repository) *Service {
	return &Service{hospitals: hospitals}
}

func (s *Service) Create(ctx context.Context, h *Hospital) error {
	if h.Name == "" {
		return fmt.Errorf("name is required")
	}
	if h.Email == "" {
		return fmt.Errorf("email is required")
	}
	return s.hospitals.Create(ctx, h)
}

func (s *Service) Get(ctx context.Context, id string) (*Hospital, error) {
	return s.hospitals.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Hospital, error) {
	return s.hospitals.List(ctx)
}

// Departments returns a hospital's departments in declaration order.
func (s *Service) Departments(ctx context.Context, hospitalID string) ([]Department, error) {
	h, err := s.hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return h.Departments, nil
}
