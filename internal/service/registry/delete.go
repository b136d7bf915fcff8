package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// Delete removes a consultant from the roster. Protocol records issued to
// the consultant are kept and continue to carry the old id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	if err := s.consultants.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete consultant: %w", err)
	}

	s.log.InfoContext(ctx, "consultant deleted", slog.Int64("consultant_id", id))

	return nil
}
