// Package calculator implements the pure bill-domain computations:
// urgency classification, collection queries for dashboard and calendar
// views, and recurring-bill generation.
//
// Every function here is side-effect-free and takes "today" as an explicit
// parameter instead of reading the wall clock, so results are
// deterministic and directly testable.
package calculator

import "github.com/perrrrrrrrr/prism-bills-app/internal/models"

// Urgency classifies a bill's temporal proximity to its due date.
type Urgency string

const (
	UrgencyPaid     Urgency = "paid"
	UrgencyOverdue  Urgency = "overdue"
	UrgencyUrgent   Urgency = "urgent"   // due within 3 days
	UrgencySoon     Urgency = "soon"     // due within 4-7 days
	UrgencyUpcoming Urgency = "upcoming" // due later than a week out
)

// Label returns the display label for the tier.
func (u Urgency) Label() string {
	switch u {
	case UrgencyPaid:
		return "Paid"
	case UrgencyOverdue:
		return "Overdue"
	case UrgencyUrgent:
		return "Due Soon"
	case UrgencySoon:
		return "This Week"
	case UrgencyUpcoming:
		return "Upcoming"
	}
	return "Unknown"
}

// DaysUntilDue returns the civil-day distance from today to due: zero on
// the due date itself, negative once overdue.
func DaysUntilDue(today, due models.Date) int {
	return today.DaysUntil(due)
}

// Classify computes a bill's urgency tier for the given day. Total and
// deterministic: every bill maps to exactly one tier. Boundaries are
// inclusive on the lower tier, so exactly 3 days out is still urgent and
// exactly 7 days out is still soon.
func Classify(bill models.Bill, today models.Date) Urgency {
	if bill.Paid {
		return UrgencyPaid
	}
	switch d := DaysUntilDue(today, bill.DueDate); {
	case d < 0:
		return UrgencyOverdue
	case d <= 3:
		return UrgencyUrgent
	case d <= 7:
		return UrgencySoon
	default:
		return UrgencyUpcoming
	}
}
