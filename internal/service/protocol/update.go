package protocol

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atendely/dispatch-backend/internal/adapter/postgres/protocol"
	"github.com/atendely/dispatch-backend/internal/domain"
)

// Update amends a protocol's metadata. The ticket number is immutable; only
// the consultant binding and the note can change.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Protocol, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.protocols.Update(ctx, id, protocol.UpdateParams{
		ConsultantID: input.ConsultantID,
		Note:         trimOrNil(input.Note),
	})
	if err != nil {
		return nil, fmt.Errorf("update protocol: %w", err)
	}

	s.log.InfoContext(ctx, "protocol updated", slog.Int64("protocol_id", id))

	return updated, nil
}
