package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ConsultantOpt mutates a consultant before seeding.
type ConsultantOpt func(*domain.Consultant)

// WithLanguages sets the language set.
func WithLanguages(langs ...string) ConsultantOpt {
	return func(c *domain.Consultant) { c.Languages = langs }
}

// WithLastServed sets last_served_at.
func WithLastServed(t time.Time) ConsultantOpt {
	return func(c *domain.Consultant) { c.LastServedAt = &t }
}

// Offline marks the consultant offline.
func Offline() ConsultantOpt {
	return func(c *domain.Consultant) { c.Online = false }
}

// Inactive clears the global eligibility flag.
func Inactive() ConsultantOpt {
	return func(c *domain.Consultant) { c.Active = false }
}

// OutOfSequentialPool removes the consultant from auto-dispatch.
func OutOfSequentialPool() ConsultantOpt {
	return func(c *domain.Consultant) { c.SequentialEnabled = false }
}

// SeedConsultant creates a consultant that is eligible for dispatch by
// default: active, in the sequential pool, online, never served, speaking
// "pt". Options override any of that.
func SeedConsultant(t *testing.T, pool *pgxpool.Pool, opts ...ConsultantOpt) domain.Consultant {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Consultant{
		Name:              "Consultant " + suffix,
		Languages:         []string{"pt"},
		Active:            true,
		SequentialEnabled: true,
		Online:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(&c)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO consultants (name, languages, active, sequential_enabled, online,
		                          last_served_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		c.Name, c.Languages, c.Active, c.SequentialEnabled, c.Online,
		c.LastServedAt, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedConsultant insert: %v", err)
	}

	return c
}

// SeedProtocol creates a protocol record with the given number and consultant.
func SeedProtocol(t *testing.T, pool *pgxpool.Pool, number string, consultantID int64) domain.Protocol {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Protocol{
		Number:       number,
		ConsultantID: consultantID,
		CreatedAt:    now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO protocols (number, consultant_id, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		p.Number, p.ConsultantID, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedProtocol insert: %v", err)
	}

	return p
}

// ResetCounter deletes the ticket counter row so a test can exercise lazy
// initialization from a clean slate.
func ResetCounter(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `DELETE FROM ticket_counter`); err != nil {
		t.Fatalf("testhelper: ResetCounter: %v", err)
	}
}
