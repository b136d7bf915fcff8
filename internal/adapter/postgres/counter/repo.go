// Package counter implements the single-row ticket counter using PostgreSQL.
// The counter is the generator of every protocol number: its values are
// strictly increasing with no gaps and no repeats, provided every increment
// happens through Next inside a committed transaction.
package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/atendely/dispatch-backend/internal/adapter/postgres"
)

// Repo provides access to the singleton ticket counter row.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new counter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// nextSQL is an atomic read-modify-write on the counter row. The upsert form
// doubles as race-safe lazy initialization: if the row is missing, the first
// caller inserts last_number = 1 while a simultaneous second caller serializes
// on the conflict and lands on 2. Row-level locking makes concurrent
// increments queue, never skip or repeat.
const nextSQL = `
INSERT INTO ticket_counter (id, last_number, updated_at)
VALUES (1, 1, now())
ON CONFLICT (id) DO UPDATE
SET last_number = ticket_counter.last_number + 1,
    updated_at  = now()
RETURNING last_number`

// Next increments the counter and returns the new value. When called inside a
// transaction the increment commits or rolls back with it, keeping the issued
// sequence gapless.
func (r *Repo) Next(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, nextSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("increment ticket counter: %w", err)
	}

	return n, nil
}

const currentSQL = `SELECT last_number FROM ticket_counter WHERE id = 1`

// Current returns the last issued counter value without incrementing.
// Returns 0 when the counter row has not been created yet.
func (r *Repo) Current(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	err := q.QueryRow(ctx, currentSQL).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("read ticket counter: %w", err)
	}

	return n, nil
}
