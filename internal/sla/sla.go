// Package sla computes service-level due dates from ticket priority and the
// live breached/remaining display state. It is pure and stateless: breach is
// computed on read and never written back.
package sla

import (
	"time"

	"servicedesk-backend/internal/database/models"
)

// Response targets per priority. Unrecognized priorities get the medium target.
const (
	criticalTarget = 1 * time.Hour
	highTarget     = 4 * time.Hour
	mediumTarget   = 24 * time.Hour
	lowTarget      = 48 * time.Hour
)

// DueAt returns the SLA due timestamp for a ticket created at createdAt with
// the given priority. The value is stamped once at creation and is immutable.
func DueAt(priority models.TicketPriority, createdAt time.Time) time.Time {
	switch priority {
	case models.TicketPriorityCritical:
		return createdAt.Add(criticalTarget)
	case models.TicketPriorityHigh:
		return createdAt.Add(highTarget)
	case models.TicketPriorityLow:
		return createdAt.Add(lowTarget)
	default:
		return createdAt.Add(mediumTarget)
	}
}

// Remaining is the display state of an SLA timer at a point in time
type Remaining struct {
	Breached bool `json:"breached"`
	Hours    int  `json:"hours"`
	Minutes  int  `json:"minutes"`
}

// ComputeRemaining returns the countdown (or overrun, when breached) between
// now and dueAt by absolute difference.
func ComputeRemaining(dueAt, now time.Time) Remaining {
	diff := dueAt.Sub(now)
	breached := diff < 0
	if breached {
		diff = -diff
	}
	return Remaining{
		Breached: breached,
		Hours:    int(diff / time.Hour),
		Minutes:  int(diff % time.Hour / time.Minute),
	}
}
