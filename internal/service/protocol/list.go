package protocol

import (
	"context"
	"fmt"

	"github.com/atendely/dispatch-backend/internal/adapter/postgres/protocol"
	"github.com/atendely/dispatch-backend/internal/domain"
)

// List returns a page of protocols, newest first, optionally filtered by
// consultant. A zero limit falls back to the service default; oversized
// limits are clamped to the configured maximum.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Protocol, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	items, total, err := s.protocols.List(ctx, protocol.ListFilter{
		ConsultantID: input.ConsultantID,
		Limit:        limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list protocols: %w", err)
	}
	return items, total, nil
}
