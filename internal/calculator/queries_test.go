package calculator

import (
	"testing"
	"time"

	"github.com/perrrrrrrrr/prism-bills-app/internal/models"
)

func date(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testBills() []models.Bill {
	return []models.Bill{
		{ID: "1", Name: "Rent", Amount: 1200, DueDate: date("2024-03-12")},
		{ID: "2", Name: "Electric", Amount: 85.50, DueDate: date("2024-03-05")},
		{ID: "3", Name: "Water", Amount: 40, DueDate: date("2024-03-05"), Paid: true},
		{ID: "4", Name: "Internet", Amount: 60, DueDate: date("2024-03-17")},
		{ID: "5", Name: "Gym", Amount: 25, DueDate: date("2024-04-02")},
		{ID: "6", Name: "Car Insurance", Amount: 110, DueDate: date("2024-03-31")},
	}
}

func TestOverdue(t *testing.T) {
	today := date("2024-03-10")
	got := Overdue(testBills(), today)

	if len(got) != 1 {
		t.Fatalf("Overdue returned %d bills, want 1", len(got))
	}
	if got[0].Name != "Electric" {
		t.Errorf("overdue bill = %s, want Electric", got[0].Name)
	}
	// Water is also past due but paid; paid bills are never overdue.
}

func TestDueWithinDays(t *testing.T) {
	today := date("2024-03-10")

	got := DueWithinDays(testBills(), today, 7)
	if len(got) != 2 {
		t.Fatalf("DueWithinDays(7) returned %d bills, want 2", len(got))
	}
	names := map[string]bool{}
	for _, b := range got {
		names[b.Name] = true
	}
	if !names["Rent"] || !names["Internet"] {
		t.Errorf("DueWithinDays(7) = %v, want Rent and Internet", names)
	}
}

func TestDueWithinDaysIncludesToday(t *testing.T) {
	today := date("2024-03-10")
	bills := []models.Bill{{ID: "1", Name: "Rent", DueDate: today}}

	got := DueWithinDays(bills, today, 7)
	if len(got) != 1 {
		t.Fatalf("bill due today missing from due-this-week query")
	}
	if c := Classify(got[0], today); c != UrgencyUrgent {
		t.Errorf("bill due today classified %s, want %s", c, UrgencyUrgent)
	}
}

func TestTotalUpcoming(t *testing.T) {
	today := date("2024-03-10")

	// Unpaid bills due in [today, Mar 31]: Rent 1200 + Internet 60 +
	// Car Insurance 110. Electric is overdue, Water paid, Gym in April.
	got := TotalUpcoming(testBills(), today)
	want := 1370.0
	if got != want {
		t.Errorf("TotalUpcoming = %v, want %v", got, want)
	}
}

func TestBillsOnDate(t *testing.T) {
	got := BillsOnDate(testBills(), date("2024-03-05"))
	if len(got) != 2 {
		t.Fatalf("BillsOnDate returned %d bills, want 2 (paid bills included)", len(got))
	}

	if got := BillsOnDate(testBills(), date("2024-03-06")); len(got) != 0 {
		t.Errorf("BillsOnDate on empty day returned %d bills", len(got))
	}
}

func TestBillsForMonth(t *testing.T) {
	got := BillsForMonth(testBills(), 2024, time.March)
	if len(got) != 5 {
		t.Errorf("BillsForMonth(March) returned %d bills, want 5", len(got))
	}
	got = BillsForMonth(testBills(), 2024, time.April)
	if len(got) != 1 || got[0].Name != "Gym" {
		t.Errorf("BillsForMonth(April) = %v, want just Gym", got)
	}
}

func TestFilterAndSort(t *testing.T) {
	today := date("2024-03-10")
	bills := testBills()

	t.Run("amount sort is non-increasing", func(t *testing.T) {
		got := FilterAndSort(bills, today, FilterAll, SortByAmount)
		if len(got) != len(bills) {
			t.Fatalf("FilterAll dropped bills: got %d, want %d", len(got), len(bills))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Amount > got[i-1].Amount {
				t.Errorf("amounts out of order at %d: %v after %v", i, got[i].Amount, got[i-1].Amount)
			}
		}
	})

	t.Run("name sort is non-decreasing", func(t *testing.T) {
		got := FilterAndSort(bills, today, FilterAll, SortByName)
		for i := 1; i < len(got); i++ {
			if got[i].Name < got[i-1].Name {
				t.Errorf("names out of order at %d: %q after %q", i, got[i].Name, got[i-1].Name)
			}
		}
	})

	t.Run("due date sort is chronological", func(t *testing.T) {
		got := FilterAndSort(bills, today, FilterAll, SortByDueDate)
		for i := 1; i < len(got); i++ {
			if got[i].DueDate.Before(got[i-1].DueDate.Time) {
				t.Errorf("due dates out of order at %d: %s after %s", i, got[i].DueDate, got[i-1].DueDate)
			}
		}
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		// Electric and Water share a due date; input order must survive.
		got := FilterAndSort(bills, today, FilterAll, SortByDueDate)
		if got[0].Name != "Electric" || got[1].Name != "Water" {
			t.Errorf("equal-key order not preserved: got %s, %s", got[0].Name, got[1].Name)
		}
	})

	t.Run("filters select the right subsets", func(t *testing.T) {
		if got := FilterAndSort(bills, today, FilterPaid, SortByDueDate); len(got) != 1 || got[0].Name != "Water" {
			t.Errorf("FilterPaid = %v, want just Water", got)
		}
		if got := FilterAndSort(bills, today, FilterUnpaid, SortByDueDate); len(got) != 5 {
			t.Errorf("FilterUnpaid returned %d bills, want 5", len(got))
		}
		if got := FilterAndSort(bills, today, FilterOverdue, SortByDueDate); len(got) != 1 || got[0].Name != "Electric" {
			t.Errorf("FilterOverdue = %v, want just Electric", got)
		}
		if got := FilterAndSort(bills, today, FilterUpcoming, SortByDueDate); len(got) != 2 {
			t.Errorf("FilterUpcoming returned %d bills, want 2", len(got))
		}
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		once := FilterAndSort(bills, today, FilterUnpaid, SortByDueDate)
		twice := FilterAndSort(once, today, FilterUnpaid, SortByDueDate)
		if len(once) != len(twice) {
			t.Fatalf("re-filtering changed size: %d -> %d", len(once), len(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Errorf("re-filtering changed order at %d: %s -> %s", i, once[i].ID, twice[i].ID)
			}
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := make([]string, len(bills))
		for i, b := range bills {
			before[i] = b.ID
		}
		FilterAndSort(bills, today, FilterAll, SortByAmount)
		for i, b := range bills {
			if b.ID != before[i] {
				t.Fatalf("input slice reordered at %d", i)
			}
		}
	})
}
