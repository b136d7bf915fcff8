// Package protocol implements the protocol record repository using
// PostgreSQL. Records are inserted by dispatches and ticket issuance and are
// immutable afterwards except for descriptive metadata.
package protocol

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/atendely/dispatch-backend/internal/adapter/postgres"
	"github.com/atendely/dispatch-backend/internal/domain"
)

// Repo provides protocol record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new protocol repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const protocolColumns = `id, number, consultant_id, note, created_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createProtocolSQL = `
INSERT INTO protocols (number, consultant_id, note, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + protocolColumns

// Create inserts a new protocol record. The UNIQUE constraint on number backs
// the ticket uniqueness invariant; a violation maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Protocol) (*domain.Protocol, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createProtocolSQL,
		p.Number,
		p.ConsultantID,
		ptrStringToPgText(p.Note),
		p.CreatedAt,
	)

	created, err := scanProtocol(row)
	if err != nil {
		return nil, postgres.MapError(err, "protocol", 0)
	}

	return created, nil
}

// UpdateParams carries the mutable protocol metadata. Nil fields are left
// untouched. Number and created_at are immutable.
type UpdateParams struct {
	ConsultantID *int64
	Note         *string
}

// Update applies metadata changes and returns the updated record.
func (r *Repo) Update(ctx context.Context, id int64, p UpdateParams) (*domain.Protocol, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := squirrel.Update("protocols").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + protocolColumns)

	updated := false
	if p.ConsultantID != nil {
		b = b.Set("consultant_id", *p.ConsultantID)
		updated = true
	}
	if p.Note != nil {
		b = b.Set("note", *p.Note)
		updated = true
	}
	if !updated {
		return r.GetByID(ctx, id)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build protocol update: %w", err)
	}

	proto, err := scanProtocol(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "protocol", id)
	}

	return proto, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getProtocolSQL = `
SELECT ` + protocolColumns + `
FROM protocols
WHERE id = $1`

// GetByID returns a protocol by primary key.
// Returns domain.ErrNotFound if the protocol does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Protocol, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProtocol(q.QueryRow(ctx, getProtocolSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "protocol", id)
	}

	return p, nil
}

// ListFilter narrows a protocol listing.
type ListFilter struct {
	// ConsultantID filters by winner id when non-nil.
	ConsultantID *int64
	Limit        int
	Offset       int
}

// List returns protocol records newest-first with pagination and an optional
// consultant filter, plus the total count matching the filter.
func (r *Repo) List(ctx context.Context, f ListFilter) ([]*domain.Protocol, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{}
	if f.ConsultantID != nil {
		where = append(where, squirrel.Eq{"consultant_id": *f.ConsultantID})
	}

	countB := squirrel.Select("count(*)").
		PlaceholderFormat(squirrel.Dollar).
		From("protocols")
	listB := squirrel.Select(protocolColumns).
		PlaceholderFormat(squirrel.Dollar).
		From("protocols").
		OrderBy("id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	if len(where) > 0 {
		countB = countB.Where(where)
		listB = listB.Where(where)
	}

	countSQL, countArgs, err := countB.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build protocol count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count protocols: %w", err)
	}

	listSQL, listArgs, err := listB.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build protocol list: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list protocols: %w", err)
	}
	defer rows.Close()

	var protocols []*domain.Protocol
	for rows.Next() {
		p, err := scanProtocol(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan protocol: %w", err)
		}
		protocols = append(protocols, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list protocols: %w", err)
	}

	return protocols, total, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanProtocol(row pgx.Row) (*domain.Protocol, error) {
	var (
		p    domain.Protocol
		note pgtype.Text
	)

	if err := row.Scan(&p.ID, &p.Number, &p.ConsultantID, &note, &p.CreatedAt); err != nil {
		return nil, err
	}

	if note.Valid {
		p.Note = &note.String
	}

	return &p, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
