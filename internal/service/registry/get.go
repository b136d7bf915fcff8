package registry

import (
	"context"
	"fmt"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// Get returns one consultant by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Consultant, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}

	c, err := s.consultants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get consultant: %w", err)
	}
	return c, nil
}
