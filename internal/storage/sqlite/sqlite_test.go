package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/perrrrrrrrr/prism-bills-app/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Load on empty store returns defaults", func(t *testing.T) {
		store := newTestStore(t)

		doc, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(doc.Bills) != 0 || len(doc.Accounts) != 0 {
			t.Errorf("empty store returned data: %+v", doc)
		}
		if !doc.Settings.NotificationsEnabled {
			t.Error("default settings should enable notifications")
		}
		if len(doc.Settings.ReminderDays) != 3 {
			t.Errorf("default reminder days = %v, want [1 3 7]", doc.Settings.ReminderDays)
		}
	})

	t.Run("Save then Load round-trips the document", func(t *testing.T) {
		store := newTestStore(t)

		due, _ := models.ParseDate("2024-04-01")
		accountID := "acct-1"
		paidAt := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
		doc := models.DefaultDocument()
		doc.Bills = append(doc.Bills,
			models.Bill{
				ID: "b1", Name: "Rent", Amount: 1200, DueDate: due,
				Recurring: models.RecurrenceMonthly, Category: "Housing",
				AccountID: &accountID, CreatedAt: paidAt,
			},
			models.Bill{
				ID: "b2", Name: "Water", Amount: 40, DueDate: due,
				Recurring: models.RecurrenceNone,
				Paid:      true, PaidDate: &paidAt, CreatedAt: paidAt,
			},
		)
		doc.Accounts = append(doc.Accounts, models.Account{
			ID: accountID, Name: "Joint Checking", Type: models.AccountChecking, Balance: 2500.75, CreatedAt: paidAt,
		})

		if err := store.Save(ctx, doc); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded.Bills) != 2 || len(loaded.Accounts) != 1 {
			t.Fatalf("round trip lost records: %d bills, %d accounts", len(loaded.Bills), len(loaded.Accounts))
		}

		rent := loaded.Bills[0]
		if rent.Name != "Rent" || rent.Amount != 1200 || !rent.DueDate.SameDate(due) {
			t.Errorf("rent fields wrong after round trip: %+v", rent)
		}
		if rent.AccountID == nil || *rent.AccountID != accountID {
			t.Errorf("rent lost account link: %v", rent.AccountID)
		}

		water := loaded.Bills[1]
		if !water.Paid || water.PaidDate == nil || !water.PaidDate.Equal(paidAt) {
			t.Errorf("water lost paid state: paid=%v paidDate=%v", water.Paid, water.PaidDate)
		}
	})

	t.Run("Save replaces the previous document", func(t *testing.T) {
		store := newTestStore(t)

		doc := models.DefaultDocument()
		doc.Bills = append(doc.Bills, models.Bill{ID: "b1", Name: "Rent"})
		if err := store.Save(ctx, doc); err != nil {
			t.Fatalf("first Save failed: %v", err)
		}

		doc.Bills = nil
		doc.Settings.NotificationsEnabled = false
		if err := store.Save(ctx, doc); err != nil {
			t.Fatalf("second Save failed: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded.Bills) != 0 {
			t.Errorf("stale bills survived overwrite: %d", len(loaded.Bills))
		}
		if loaded.Settings.NotificationsEnabled {
			t.Error("settings change lost on overwrite")
		}
	})

	t.Run("New creates parent directories", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
		store, err := New(dbPath)
		if err != nil {
			t.Fatalf("New with nested path failed: %v", err)
		}
		store.Close()
		if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
			t.Errorf("parent directory missing: %v", err)
		}
	})

	t.Run("corrupt blob surfaces a decode error", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.db.ExecContext(ctx,
			"INSERT INTO document (key, data, updated_at) VALUES (?, ?, ?)",
			storeKey, []byte("{not json"), time.Now().Unix(),
		)
		if err != nil {
			t.Fatalf("failed to plant corrupt row: %v", err)
		}

		if _, err := store.Load(ctx); err == nil {
			t.Error("Load of corrupt document should error so the gateway can fall back")
		}
	})
}
