package calculator

import (
	"sort"
	"strings"
	"time"

	"github.com/perrrrrrrrr/prism-bills-app/internal/models"
)

// Filter selects a subset of bills for list views.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterUnpaid   Filter = "unpaid"
	FilterPaid     Filter = "paid"
	FilterOverdue  Filter = "overdue"
	FilterUpcoming Filter = "upcoming" // unpaid and due within 7 days
)

// SortKey orders a bill list. Each key has a fixed direction: due date
// ascending, amount descending, name ascending.
type SortKey string

const (
	SortByDueDate SortKey = "dueDate"
	SortByAmount  SortKey = "amount"
	SortByName    SortKey = "name"
)

// Overdue returns the unpaid bills whose due date has passed.
func Overdue(bills []models.Bill, today models.Date) []models.Bill {
	var out []models.Bill
	for _, b := range bills {
		if !b.Paid && DaysUntilDue(today, b.DueDate) < 0 {
			out = append(out, b)
		}
	}
	return out
}

// DueWithinDays returns the unpaid bills due between today and n days out,
// both ends inclusive. Overdue bills are excluded.
func DueWithinDays(bills []models.Bill, today models.Date, n int) []models.Bill {
	var out []models.Bill
	for _, b := range bills {
		if b.Paid {
			continue
		}
		if d := DaysUntilDue(today, b.DueDate); d >= 0 && d <= n {
			out = append(out, b)
		}
	}
	return out
}

// TotalUpcoming sums the amounts of unpaid bills due between today and the
// end of today's calendar month, inclusive.
func TotalUpcoming(bills []models.Bill, today models.Date) float64 {
	monthEnd := today.EndOfMonth()
	var total float64
	for _, b := range bills {
		if b.Paid {
			continue
		}
		if !b.DueDate.Before(today.Time) && !b.DueDate.After(monthEnd.Time) {
			total += b.Amount
		}
	}
	return total
}

// BillsOnDate returns the bills due on exactly the given calendar day,
// paid or not. Calendar cells show both.
func BillsOnDate(bills []models.Bill, date models.Date) []models.Bill {
	var out []models.Bill
	for _, b := range bills {
		if b.DueDate.SameDate(date) {
			out = append(out, b)
		}
	}
	return out
}

// BillsForMonth returns the bills due in the given calendar month.
func BillsForMonth(bills []models.Bill, year int, month time.Month) []models.Bill {
	var out []models.Bill
	for _, b := range bills {
		y, m, _ := b.DueDate.Date()
		if y == year && m == month {
			out = append(out, b)
		}
	}
	return out
}

// FilterAndSort applies filter then orders the result by key. The input
// slice is never modified. The sort is stable so bills with equal keys
// keep their relative order and list views render deterministically.
func FilterAndSort(bills []models.Bill, today models.Date, filter Filter, key SortKey) []models.Bill {
	out := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		if matches(b, today, filter) {
			out = append(out, b)
		}
	}

	switch key {
	case SortByAmount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount > out[j].Amount
		})
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.Compare(out[i].Name, out[j].Name) < 0
		})
	default: // SortByDueDate
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DueDate.Before(out[j].DueDate.Time)
		})
	}
	return out
}

func matches(b models.Bill, today models.Date, filter Filter) bool {
	switch filter {
	case FilterUnpaid:
		return !b.Paid
	case FilterPaid:
		return b.Paid
	case FilterOverdue:
		return !b.Paid && DaysUntilDue(today, b.DueDate) < 0
	case FilterUpcoming:
		d := DaysUntilDue(today, b.DueDate)
		return !b.Paid && d >= 0 && d <= 7
	default: // FilterAll
		return true
	}
}
