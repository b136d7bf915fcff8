// Package protocol implements ticket issuance and protocol record management
// outside the dispatch path: minting a ticket for a known consultant, minting
// an unassigned ticket, and reading or amending existing records.
package protocol

import (
	"context"
	"log/slog"
	"strings"

	"github.com/atendely/dispatch-backend/internal/adapter/postgres/protocol"
	"github.com/atendely/dispatch-backend/internal/domain"
)

type protocolRepo interface {
	Create(ctx context.Context, p *domain.Protocol) (*domain.Protocol, error)
	GetByID(ctx context.Context, id int64) (*domain.Protocol, error)
	Update(ctx context.Context, id int64, p protocol.UpdateParams) (*domain.Protocol, error)
	List(ctx context.Context, f protocol.ListFilter) ([]*domain.Protocol, int, error)
}

type ticketCounter interface {
	Next(ctx context.Context) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides protocol issuance and management operations.
type Service struct {
	tx        txManager
	protocols protocolRepo
	counter   ticketCounter
	log       *slog.Logger

	defaultPageSize int
	maxPageSize     int
}

// NewService creates a new protocol service. Page sizes bound List results;
// defaultPageSize applies when the caller omits a limit.
func NewService(
	log *slog.Logger,
	tx txManager,
	protocols protocolRepo,
	counter ticketCounter,
	defaultPageSize int,
	maxPageSize int,
) *Service {
	return &Service{
		tx:              tx,
		protocols:       protocols,
		counter:         counter,
		log:             log.With("service", "protocol"),
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
