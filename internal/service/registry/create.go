package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// Create registers a new consultant. New consultants start offline and never
// served, so the first successful dispatch puts them at the front of the
// rotation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Consultant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c, err := s.consultants.Create(ctx, &domain.Consultant{
		Name:              strings.TrimSpace(input.Name),
		Email:             trimOrNil(input.Email),
		Phone:             trimOrNil(input.Phone),
		CRMID:             input.CRMID,
		Languages:         normalizeLanguages(input.Languages),
		Active:            input.Active,
		SequentialEnabled: input.SequentialEnabled,
		Online:            false,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, fmt.Errorf("create consultant: %w", err)
	}

	s.log.InfoContext(ctx, "consultant created",
		slog.Int64("consultant_id", c.ID),
		slog.String("name", c.Name),
	)

	return c, nil
}
