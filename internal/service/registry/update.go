package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atendely/dispatch-backend/internal/adapter/postgres/consultant"
	"github.com/atendely/dispatch-backend/internal/domain"
)

// Update applies a partial update to a consultant's profile and eligibility
// flags. The fairness timestamp cannot be changed through this path.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Consultant, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := consultant.UpdateParams{
		Name:              trimOrNil(input.Name),
		Email:             trimOrNil(input.Email),
		Phone:             trimOrNil(input.Phone),
		CRMID:             input.CRMID,
		Active:            input.Active,
		SequentialEnabled: input.SequentialEnabled,
		Online:            input.Online,
	}
	if input.Languages != nil {
		params.Languages = normalizeLanguages(input.Languages)
	}

	c, err := s.consultants.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update consultant: %w", err)
	}

	s.log.InfoContext(ctx, "consultant updated", slog.Int64("consultant_id", id))

	return c, nil
}
