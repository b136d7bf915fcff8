// Package consultant implements the consultant registry repository using
// PostgreSQL. Besides plain CRUD it owns the claim statement used by the
// dispatcher: an ordered FOR UPDATE SKIP LOCKED selection that picks the
// oldest-idle eligible consultant and stamps last_served_at in the same
// statement.
package consultant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/atendely/dispatch-backend/internal/adapter/postgres"
	"github.com/atendely/dispatch-backend/internal/domain"
)

// Repo provides consultant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new consultant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const consultantColumns = `id, name, email, phone, crm_id, languages,
       active, sequential_enabled, online, last_served_at, created_at, updated_at`

// ---------------------------------------------------------------------------
// Dispatch claim
// ---------------------------------------------------------------------------

// claimNextSQL selects the dispatch winner and advances its last_served_at in
// one statement. Candidates are ordered oldest-idle first (NULL last_served_at
// counts as epoch, so never-served consultants win), id ASC as tie-break.
// FOR UPDATE SKIP LOCKED makes the scan pass over rows locked by concurrent
// dispatches instead of blocking on them: two simultaneous callers can never
// claim the same row, and a slow transaction never stalls the others.
const claimNextSQL = `
WITH candidate AS (
    SELECT id
    FROM consultants
    WHERE active
      AND sequential_enabled
      AND online
      AND $1 = ANY (languages)
    ORDER BY COALESCE(last_served_at, 'epoch'::timestamptz) ASC, id ASC
    LIMIT 1
    FOR UPDATE SKIP LOCKED
)
UPDATE consultants c
SET last_served_at = $2, updated_at = $2
FROM candidate
WHERE c.id = candidate.id
RETURNING c.id, c.name, c.email, c.phone, c.crm_id, c.languages,
          c.active, c.sequential_enabled, c.online, c.last_served_at,
          c.created_at, c.updated_at`

// ClaimNext atomically selects and claims the next consultant for the given
// language. The eligibility read and the last_served_at write happen in the
// same statement, so no concurrent transaction can observe the row between
// selection and claim. Must be called inside a dispatch transaction; the row
// lock is held until that transaction commits or rolls back.
//
// Returns domain.ErrNoEligibleConsultant when nothing matched the filter or
// every match was locked by a concurrent dispatch.
func (r *Repo) ClaimNext(ctx context.Context, language string, at time.Time) (*domain.Consultant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, claimNextSQL, language, at)

	c, err := scanConsultant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("claim next %q: %w", language, domain.ErrNoEligibleConsultant)
		}
		return nil, fmt.Errorf("claim next %q: %w", language, err)
	}

	return c, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getConsultantSQL = `
SELECT ` + consultantColumns + `
FROM consultants
WHERE id = $1`

// GetByID returns a consultant by primary key.
// Returns domain.ErrNotFound if the consultant does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Consultant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanConsultant(q.QueryRow(ctx, getConsultantSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "consultant", id)
	}

	return c, nil
}

const listConsultantsSQL = `
SELECT ` + consultantColumns + `
FROM consultants
ORDER BY id ASC`

// List returns all consultants ordered by id.
func (r *Repo) List(ctx context.Context) ([]*domain.Consultant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listConsultantsSQL)
	if err != nil {
		return nil, fmt.Errorf("list consultants: %w", err)
	}
	defer rows.Close()

	var consultants []*domain.Consultant
	for rows.Next() {
		c, err := scanConsultant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consultant: %w", err)
		}
		consultants = append(consultants, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list consultants: %w", err)
	}

	return consultants, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createConsultantSQL = `
INSERT INTO consultants (name, email, phone, crm_id, languages,
                         active, sequential_enabled, online, last_served_at,
                         created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + consultantColumns

// Create inserts a new consultant and returns the persisted record.
func (r *Repo) Create(ctx context.Context, c *domain.Consultant) (*domain.Consultant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createConsultantSQL,
		c.Name,
		ptrStringToPgText(c.Email),
		ptrStringToPgText(c.Phone),
		ptrInt64ToPgInt8(c.CRMID),
		c.Languages,
		c.Active,
		c.SequentialEnabled,
		c.Online,
		ptrTimeToPgTimestamptz(c.LastServedAt),
		c.CreatedAt,
	)

	created, err := scanConsultant(row)
	if err != nil {
		return nil, postgres.MapError(err, "consultant", 0)
	}

	return created, nil
}

// UpdateParams carries the partial-update set for a consultant. Nil fields
// are left untouched.
type UpdateParams struct {
	Name              *string
	Email             *string
	Phone             *string
	CRMID             *int64
	Languages         []string
	Active            *bool
	SequentialEnabled *bool
	Online            *bool
}

// Update applies a partial update and returns the updated record.
// last_served_at is deliberately not updatable here: only a winning claim
// may move it.
func (r *Repo) Update(ctx context.Context, id int64, p UpdateParams) (*domain.Consultant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := squirrel.Update("consultants").
		PlaceholderFormat(squirrel.Dollar).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + consultantColumns)

	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Email != nil {
		b = b.Set("email", *p.Email)
	}
	if p.Phone != nil {
		b = b.Set("phone", *p.Phone)
	}
	if p.CRMID != nil {
		b = b.Set("crm_id", *p.CRMID)
	}
	if p.Languages != nil {
		b = b.Set("languages", p.Languages)
	}
	if p.Active != nil {
		b = b.Set("active", *p.Active)
	}
	if p.SequentialEnabled != nil {
		b = b.Set("sequential_enabled", *p.SequentialEnabled)
	}
	if p.Online != nil {
		b = b.Set("online", *p.Online)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build consultant update: %w", err)
	}

	c, err := scanConsultant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "consultant", id)
	}

	return c, nil
}

const setOnlineSQL = `
UPDATE consultants
SET online = $2, updated_at = now()
WHERE id = $1
RETURNING ` + consultantColumns

// SetOnline updates the presence flag from the external connection signal.
func (r *Repo) SetOnline(ctx context.Context, id int64, online bool) (*domain.Consultant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanConsultant(q.QueryRow(ctx, setOnlineSQL, id, online))
	if err != nil {
		return nil, postgres.MapError(err, "consultant", id)
	}

	return c, nil
}

const deleteConsultantSQL = `DELETE FROM consultants WHERE id = $1`

// Delete removes a consultant. Historical protocol records keep referencing
// the id. Returns domain.ErrNotFound if the consultant does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteConsultantSQL, id)
	if err != nil {
		return postgres.MapError(err, "consultant", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("consultant %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

// scanConsultant maps one row onto a domain.Consultant.
func scanConsultant(row pgx.Row) (*domain.Consultant, error) {
	var (
		c          domain.Consultant
		email      pgtype.Text
		phone      pgtype.Text
		crmID      pgtype.Int8
		lastServed pgtype.Timestamptz
	)

	err := row.Scan(
		&c.ID, &c.Name, &email, &phone, &crmID, &c.Languages,
		&c.Active, &c.SequentialEnabled, &c.Online, &lastServed,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		c.Email = &email.String
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	if crmID.Valid {
		c.CRMID = &crmID.Int64
	}
	if lastServed.Valid {
		t := lastServed.Time
		c.LastServedAt = &t
	}

	return &c, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// ptrInt64ToPgInt8 converts a *int64 to pgtype.Int8 (nil -> NULL).
func ptrInt64ToPgInt8(n *int64) pgtype.Int8 {
	if n == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *n, Valid: true}
}

// ptrTimeToPgTimestamptz converts a *time.Time to pgtype.Timestamptz (nil -> NULL).
func ptrTimeToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
