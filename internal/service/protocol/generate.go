package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// Generate mints the next ticket and records an unassigned protocol for it.
// Callers that already know the consultant should use Issue instead.
func (s *Service) Generate(ctx context.Context) (*domain.Protocol, error) {
	var created *domain.Protocol

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		number, err := s.counter.Next(ctx)
		if err != nil {
			return fmt.Errorf("next ticket number: %w", err)
		}

		created, err = s.protocols.Create(ctx, &domain.Protocol{
			Number:       domain.FormatTicket(number),
			ConsultantID: domain.UnassignedConsultant,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create protocol: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "protocol generated",
		slog.Int64("protocol_id", created.ID),
		slog.String("ticket", created.Number),
	)

	return created, nil
}
