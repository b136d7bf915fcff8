package protocol

import (
	"context"
	"fmt"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// Get returns one protocol by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Protocol, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}

	p, err := s.protocols.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get protocol: %w", err)
	}
	return p, nil
}
