package domain

import "time"

// Consultant is a human agent that can win dispatches.
//
// LastServedAt is owned by the dispatch engine: it is written exclusively as
// part of a winning claim, inside the dispatch transaction. All other fields
// are managed by the registry CRUD operations.
type Consultant struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	CRMID     *int64
	Languages []string

	// Active is the global eligibility switch.
	Active bool
	// SequentialEnabled opts the consultant into the automatic
	// oldest-idle-first dispatch pool. A consultant can be active for manual
	// assignment yet excluded from auto-dispatch.
	SequentialEnabled bool
	// Online mirrors the external presence signal.
	Online bool

	// LastServedAt is nil for consultants that never won a dispatch.
	// nil sorts as oldest, so never-served consultants have top priority.
	LastServedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DispatchResult is the outcome of one successful dispatch: the winning
// consultant's public fields plus the ticket minted for the claim.
type DispatchResult struct {
	Consultant Consultant
	Ticket     string
	// ServedAt is the claim timestamp. It equals the winner's LastServedAt
	// and the protocol record's CreatedAt.
	ServedAt time.Time
}
