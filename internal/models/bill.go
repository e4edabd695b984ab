package models

import "time"

// Recurrence is a bill's repeat cadence.
type Recurrence string

const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiWeekly Recurrence = "bi-weekly"
	RecurrenceMonthly  Recurrence = "monthly"
)

// Categories is the suggested set of bill categories shown by pickers.
// Bill.Category is free-form; membership is never enforced.
var Categories = []string{
	"Housing",
	"Utilities",
	"Insurance",
	"Transportation",
	"Food",
	"Entertainment",
	"Healthcare",
	"Debt",
	"Other",
}

// Bill represents a single payable bill.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format), assigned
	// by the gateway at creation and immutable afterwards.
	ID string `json:"id"`

	// Name is the human-readable label for the bill (e.g., "Rent").
	Name string `json:"name"`

	// Amount is the bill amount in currency units, never negative.
	Amount float64 `json:"amount"`

	// DueDate is the calendar date the bill is due. There is no
	// time-of-day: urgency and queries compare civil days only.
	DueDate Date `json:"dueDate"`

	// Recurring is the bill's repeat cadence, RecurrenceNone for
	// one-off bills.
	Recurring Recurrence `json:"recurring"`

	// Category is a free-form label, usually one of Categories.
	Category string `json:"category"`

	// AccountID is a weak reference to the paying Account; nil means
	// unlinked. Deleting an account nils this field on every bill that
	// referenced it, it never deletes the bills.
	AccountID *string `json:"accountId"`

	// Paid and PaidDate move together: PaidDate is non-nil exactly
	// when Paid is true. The gateway's MarkBillPaid owns this pairing.
	Paid     bool       `json:"paid"`
	PaidDate *time.Time `json:"paidDate"`

	// CreatedAt is when the bill was created, immutable.
	CreatedAt time.Time `json:"createdAt"`
}
