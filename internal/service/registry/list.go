package registry

import (
	"context"
	"fmt"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// List returns every registered consultant, oldest registration first.
func (s *Service) List(ctx context.Context) ([]*domain.Consultant, error) {
	cs, err := s.consultants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consultants: %w", err)
	}
	return cs, nil
}
