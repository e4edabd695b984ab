package calculator

import (
	"time"

	"github.com/perrrrrrrrr/prism-bills-app/internal/models"
)

// MaxRecurrenceIterations bounds how many occurrences a single Generate
// call may project, guarding against unbounded work on malformed
// recurrence data.
const MaxRecurrenceIterations = 12

// NextOccurrence returns the due date of the occurrence after the bill's
// current due date: weekly +7 days, bi-weekly +14 days, monthly +1
// calendar month with the day-of-month clamped to the target month's last
// valid day. The second result is false for non-recurring bills.
func NextOccurrence(bill models.Bill) (models.Date, bool) {
	switch bill.Recurring {
	case models.RecurrenceWeekly:
		return bill.DueDate.AddDays(7), true
	case models.RecurrenceBiWeekly:
		return bill.DueDate.AddDays(14), true
	case models.RecurrenceMonthly:
		return bill.DueDate.AddMonths(1), true
	}
	return models.Date{}, false
}

// DefaultHorizon returns the standard generation horizon: the first day of
// the month three months after today.
func DefaultHorizon(today models.Date) models.Date {
	y, m, _ := today.Date()
	return models.NewDate(y, m+3, 1)
}

// Generate projects future instances of a recurring bill up to and
// including horizon, skipping dates on which an equivalent bill already
// exists. Candidates are produced in ascending order, each strictly after
// the source due date, and generation stops past the horizon or after
// MaxRecurrenceIterations steps.
//
// Monthly steps are always taken from the source date, so the source
// day-of-month is re-clamped per target month: a bill due Jan 31 projects
// Feb 29, Mar 31, Apr 30 rather than sliding to the 29th forever after
// February.
//
// Emitted clones carry the source's name, amount, category, account link
// and recurrence, with no ID (assigned at insertion), Paid=false and
// PaidDate=nil.
func Generate(bill models.Bill, existing []models.Bill, horizon models.Date) []models.Bill {
	if bill.Recurring == "" || bill.Recurring == models.RecurrenceNone {
		return nil
	}

	var out []models.Bill
	for step := 1; step <= MaxRecurrenceIterations; step++ {
		due := occurrence(bill, step)
		if due.After(horizon.Time) {
			break
		}
		if isDuplicate(existing, bill, due) {
			continue
		}
		next := bill
		next.ID = ""
		next.DueDate = due
		next.Paid = false
		next.PaidDate = nil
		next.CreatedAt = time.Time{}
		out = append(out, next)
	}
	return out
}

// GenerateAll runs Generate for every recurring bill in the collection.
// Instances emitted for one bill count as existing for the bills after
// it, so a single call never produces duplicates of its own output.
func GenerateAll(bills []models.Bill, horizon models.Date) []models.Bill {
	existing := append([]models.Bill(nil), bills...)
	var out []models.Bill
	for _, b := range bills {
		generated := Generate(b, existing, horizon)
		out = append(out, generated...)
		existing = append(existing, generated...)
	}
	return out
}

// occurrence computes the step-th occurrence after the bill's due date.
func occurrence(bill models.Bill, step int) models.Date {
	switch bill.Recurring {
	case models.RecurrenceWeekly:
		return bill.DueDate.AddDays(7 * step)
	case models.RecurrenceBiWeekly:
		return bill.DueDate.AddDays(14 * step)
	default:
		return bill.DueDate.AddMonths(step)
	}
}

// isDuplicate reports whether a bill matching (name, due date, recurrence)
// already exists, the identity used to avoid re-materializing instances.
func isDuplicate(existing []models.Bill, source models.Bill, due models.Date) bool {
	for _, b := range existing {
		if b.Name == source.Name && b.Recurring == source.Recurring && b.DueDate.SameDate(due) {
			return true
		}
	}
	return false
}
