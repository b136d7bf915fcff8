// Package registry manages the consultant roster: profile CRUD and the
// presence flag driven by connection events. Fairness state (last_served_at)
// is owned by the dispatch engine and is read-only here.
package registry

import (
	"context"
	"log/slog"
	"strings"

	"github.com/atendely/dispatch-backend/internal/adapter/postgres/consultant"
	"github.com/atendely/dispatch-backend/internal/domain"
)

type consultantRepo interface {
	Create(ctx context.Context, c *domain.Consultant) (*domain.Consultant, error)
	GetByID(ctx context.Context, id int64) (*domain.Consultant, error)
	List(ctx context.Context) ([]*domain.Consultant, error)
	Update(ctx context.Context, id int64, p consultant.UpdateParams) (*domain.Consultant, error)
	SetOnline(ctx context.Context, id int64, online bool) (*domain.Consultant, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides consultant roster operations.
type Service struct {
	consultants consultantRepo
	log         *slog.Logger
}

// NewService creates a new registry service.
func NewService(
	log *slog.Logger,
	consultants consultantRepo,
) *Service {
	return &Service{
		consultants: consultants,
		log:         log.With("service", "registry"),
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

// normalizeLanguages trims and deduplicates language tags, preserving
// first-seen order. Casing is kept as stored tags are matched verbatim by
// the dispatch query.
func normalizeLanguages(langs []string) []string {
	seen := make(map[string]bool, len(langs))
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		l = strings.TrimSpace(l)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
