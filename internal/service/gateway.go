// Package service implements the persistence gateway: CRUD over the
// single bill document, with identifier assignment and the fail-soft
// error contract. Every operation is read whole document, mutate in
// memory, write whole document; the gateway serializes them so the
// scheduler's scans never observe a half-applied mutation.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/perrrrrrrrr/prism-bills-app/internal/calculator"
	"github.com/perrrrrrrrr/prism-bills-app/internal/models"
	"github.com/perrrrrrrrr/prism-bills-app/internal/storage"
)

// Gateway is the sole writer of the bill document. No operation is fatal:
// unreadable storage degrades to the default document, write failures are
// logged and swallowed, and updates against unknown IDs return nil.
type Gateway struct {
	store storage.DocumentStore
	now   func() time.Time

	mu sync.Mutex
}

// NewGateway creates a Gateway over the given store.
func NewGateway(store storage.DocumentStore) *Gateway {
	return &Gateway{store: store, now: time.Now}
}

// load returns the stored document, downgrading read errors to the
// default document per the fail-soft contract.
func (g *Gateway) load(ctx context.Context) models.Document {
	doc, err := g.store.Load(ctx)
	if err != nil {
		slog.Error("failed to load document, using defaults", "error", err)
		return models.DefaultDocument()
	}
	return doc
}

// save writes the document back, logging and swallowing failures.
// Best-effort persistence: the in-memory result is still returned to the
// caller.
func (g *Gateway) save(ctx context.Context, doc models.Document) {
	if err := g.store.Save(ctx, doc); err != nil {
		slog.Error("failed to save document", "error", err)
	}
}

// Document returns the current document, defaulted if the store is empty
// or unreadable.
func (g *Gateway) Document(ctx context.Context) models.Document {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.load(ctx)
}

// AddBill stores a new bill. The gateway assigns the ID and CreatedAt and
// forces the new bill unpaid regardless of input.
func (g *Gateway) AddBill(ctx context.Context, bill models.Bill) models.Bill {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.load(ctx)
	bill.ID = uuid.New().String()
	bill.Paid = false
	bill.PaidDate = nil
	bill.CreatedAt = g.now()
	doc.Bills = append(doc.Bills, bill)
	g.save(ctx, doc)

	slog.Debug("bill added", "bill_id", bill.ID, "name", bill.Name, "due", bill.DueDate)
	return bill
}

// UpdateBill replaces the stored bill with the same ID, preserving the
// immutable ID and CreatedAt fields. Returns nil if no bill has that ID.
func (g *Gateway) UpdateBill(ctx context.Context, bill models.Bill) *models.Bill {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.load(ctx)
	for i := range doc.Bills {
		if doc.Bills[i].ID != bill.ID {
			continue
		}
		bill.CreatedAt = doc.Bills[i].CreatedAt
		doc.Bills[i] = bill
		g.save(ctx, doc)
		updated := doc.Bills[i]
		return &updated
	}
	return nil
}

// DeleteBill removes the bill with the given ID, reporting whether one
// was removed.
func (g *Gateway) DeleteBill(ctx context.Context, id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.load(ctx)
	kept := make([]models.Bill, 0, len(doc.Bills))
	for _, b := range doc.Bills {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(doc.Bills) {
		return false
	}
	doc.Bills = kept
	g.save(ctx, doc)
	return true
}

// MarkBillPaid sets or clears a bill's paid state, keeping PaidDate in
// step: set to now when paid becomes true, cleared when it becomes false.
// Returns nil if no bill has that ID.
func (g *Gateway) MarkBillPaid(ctx context.Context, id string, paid bool) *models.Bill {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.load(ctx)
	for i := range doc.Bills {
		if doc.Bills[i].ID != id {
			continue
		}
		doc.Bills[i].Paid = paid
		if paid {
			t := g.now()
			doc.Bills[i].PaidDate = &t
		} else {
			doc.Bills[i].PaidDate = nil
		}
		g.save(ctx, doc)
		updated := doc.Bills[i]
		return &updated
	}
	return nil
}

// AddAccount stores a new account, assigning ID and CreatedAt.
func (g *Gateway) AddAccount(ctx context.Context, account models.Account) models.Account {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.load(ctx)
	account.ID = uuid.New().String()
	account.CreatedAt = g.now()
	doc.Accounts = append(doc.Accounts, account)
	g.save(ctx, doc)

	slog.Debug("account added", "account_id", account.ID, "name", account.Name)
	return account
}

// UpdateAccount replaces the stored account with the same ID, preserving
// ID and CreatedAt. Returns nil if no account has that ID.
func (g *Gateway) UpdateAccount(ctx context.Context, account models.Account) *models.Account {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.load(ctx)
	for i := range doc.Accounts {
		if doc.Accounts[i].ID != account.ID {
			continue
		}
		account.CreatedAt = doc.Accounts[i].CreatedAt
		doc.Accounts[i] = account
		g.save(ctx, doc)
		updated := doc.Accounts[i]
		return &updated
	}
	return nil
}

// DeleteAccount removes the account and unlinks every bill that
// referenced it (AccountID set to nil). The bills themselves are kept;
// the reference is weak. This is the one cross-entity invariant enforced
// here rather than left to callers.
func (g *Gateway) DeleteAccount(ctx context.Context, id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.load(ctx)
	kept := make([]models.Account, 0, len(doc.Accounts))
	for _, a := range doc.Accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(doc.Accounts) {
		return false
	}
	doc.Accounts = kept

	unlinked := 0
	for i := range doc.Bills {
		if doc.Bills[i].AccountID != nil && *doc.Bills[i].AccountID == id {
			doc.Bills[i].AccountID = nil
			unlinked++
		}
	}
	g.save(ctx, doc)

	if unlinked > 0 {
		slog.Debug("account deleted, bills unlinked", "account_id", id, "unlinked", unlinked)
	}
	return true
}

// UpdateSettings replaces the stored settings and returns them.
func (g *Gateway) UpdateSettings(ctx context.Context, settings models.Settings) models.Settings {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.load(ctx)
	doc.Settings = settings
	g.save(ctx, doc)
	return doc.Settings
}

// MaterializeRecurring projects future instances of every recurring bill
// up to the default horizon, persists the ones not already present, and
// returns them with IDs assigned. Idempotent: a second call with nothing
// new in range returns nothing.
func (g *Gateway) MaterializeRecurring(ctx context.Context) []models.Bill {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.load(ctx)
	today := models.DateOf(g.now())
	generated := calculator.GenerateAll(doc.Bills, calculator.DefaultHorizon(today))
	if len(generated) == 0 {
		return nil
	}

	for i := range generated {
		generated[i].ID = uuid.New().String()
		generated[i].CreatedAt = g.now()
	}
	doc.Bills = append(doc.Bills, generated...)
	g.save(ctx, doc)

	slog.Info("recurring bills materialized", "count", len(generated))
	return generated
}
