package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// Issue mints the next ticket and records a protocol for the given
// consultant. The counter increment and the insert share one transaction, so
// a failed insert never burns a number.
func (s *Service) Issue(ctx context.Context, input IssueInput) (*domain.Protocol, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Protocol

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		number, err := s.counter.Next(ctx)
		if err != nil {
			return fmt.Errorf("next ticket number: %w", err)
		}

		created, err = s.protocols.Create(ctx, &domain.Protocol{
			Number:       domain.FormatTicket(number),
			ConsultantID: input.ConsultantID,
			Note:         trimOrNil(input.Note),
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

	s.log.InfoContext(ctx, "protocol issued",
		slog.Int64("protocol_id", created.ID),
		slog.String("ticket", created.Number),
		slog.Int64("consultant_id", created.ConsultantID),
	)

	return created, nil
}
