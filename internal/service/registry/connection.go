package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// SetConnection records a presence change. Consultants drop out of the
// dispatch rotation the moment they go offline and rejoin with their old
// fairness position when they come back.
func (s *Service) SetConnection(ctx context.Context, id int64, online bool) (*domain.Consultant, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}

	c, err := s.consultants.SetOnline(ctx, id, online)
	if err != nil {
		return nil, fmt.Errorf("set consultant connection: %w", err)
	}

	s.log.InfoContext(ctx, "consultant connection changed",
		slog.Int64("consultant_id", id),
		slog.Bool("online", online),
	)

	return c, nil
}
