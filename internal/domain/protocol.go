package domain

import (
	"fmt"
	"time"
)

// UnassignedConsultant is the sentinel consultant id carried by protocol
// records created through standalone ticket issuance, where no dispatch
// claimed a consultant.
const UnassignedConsultant int64 = 0

// Protocol is the correlation record minted for every dispatch or standalone
// ticket issuance. Number is unique and strictly increasing in commit order.
type Protocol struct {
	ID     int64
	Number string
	// ConsultantID references the winner by id, or UnassignedConsultant.
	// Plain id reference: deleting a consultant does not invalidate
	// historical protocols.
	ConsultantID int64
	Note         *string
	CreatedAt    time.Time
}

// Assigned reports whether the protocol is bound to a consultant.
func (p *Protocol) Assigned() bool {
	return p.ConsultantID != UnassignedConsultant
}

// FormatTicket renders a counter value as ticket text: "#" plus the number
// zero-padded to 5 digits. Values past 99999 keep their natural decimal
// representation — padding is presentation only, uniqueness comes from the
// counter.
func FormatTicket(n int64) string {
	return fmt.Sprintf("#%05d", n)
}
