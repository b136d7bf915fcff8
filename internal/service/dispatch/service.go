// Package dispatch implements the dispatch engine: one call selects the
// oldest-idle eligible consultant, claims it, and mints a protocol ticket for
// the claim, all inside a single database transaction. There is no in-process
// scheduler or queue; concurrent dispatches coordinate purely through row
// locks and the counter row, so the engine behaves the same across many
// processes.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atendely/dispatch-backend/internal/domain"
)

type consultantRegistry interface {
	ClaimNext(ctx context.Context, language string, at time.Time) (*domain.Consultant, error)
}

type ticketCounter interface {
	Next(ctx context.Context) (int64, error)
}

type protocolWriter interface {
	Create(ctx context.Context, p *domain.Protocol) (*domain.Protocol, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs dispatches.
type Service struct {
	tx          txManager
	consultants consultantRegistry
	counter     ticketCounter
	protocols   protocolWriter
	log         *slog.Logger
}

// NewService creates a dispatch service.
func NewService(
	log *slog.Logger,
	tx txManager,
	consultants consultantRegistry,
	counter ticketCounter,
	protocols protocolWriter,
) *Service {
	return &Service{
		tx:          tx,
		consultants: consultants,
		counter:     counter,
		protocols:   protocols,
		log:         log.With("service", "dispatch"),
	}
}

// Dispatch selects, claims, and tickets one consultant for the given language.
//
// The claim, the counter increment, and the protocol insert commit together
// or not at all: a failure after the claim rolls everything back, so no
// claimed-but-unticketed or ticketed-but-unclaimed state is ever visible.
//
// Errors: domain.ErrValidation for a blank language,
// domain.ErrNoEligibleConsultant when the pool is empty or fully contended
// (callers may retry), domain.ErrDispatchFailed wrapping any storage fault.
func (s *Service) Dispatch(ctx context.Context, language string) (*domain.DispatchResult, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, domain.NewValidationError("language", "required")
	}

	var result *domain.DispatchResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		servedAt := time.Now().UTC().Truncate(time.Microsecond)

		winner, err := s.consultants.ClaimNext(ctx, language, servedAt)
		if err != nil {
			return err
		}

		n, err := s.counter.Next(ctx)
		if err != nil {
			return fmt.Errorf("next ticket: %w", err)
		}
		ticket := domain.FormatTicket(n)

		// Same timestamp as the claim write, so the protocol's created_at
		// always equals the winner's last_served_at.
		if _, err := s.protocols.Create(ctx, &domain.Protocol{
			Number:       ticket,
			ConsultantID: winner.ID,
			CreatedAt:    servedAt,
		}); err != nil {
			return fmt.Errorf("create protocol %s: %w", ticket, err)
		}

		result = &domain.DispatchResult{
			Consultant: *winner,
			Ticket:     ticket,
			ServedAt:   servedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoEligibleConsultant) {
			s.log.InfoContext(ctx, "no eligible consultant",
				slog.String("language", language),
			)
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err)
	}

	s.log.InfoContext(ctx, "consultant dispatched",
		slog.Int64("consultant_id", result.Consultant.ID),
		slog.String("consultant_name", result.Consultant.Name),
		slog.String("language", language),
		slog.String("ticket", result.Ticket),
		slog.Time("served_at", result.ServedAt),
	)

	return result, nil
}
