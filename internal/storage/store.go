// Package storage provides abstractions for persisting the bill document.
package storage

import (
	"context"

	"github.com/perrrrrrrrr/prism-bills-app/internal/models"
)

// DocumentStore is the single-document persistence contract: the whole
// document is read and rewritten as a unit, there are no partial updates.
// This abstraction allows swapping storage backends (SQLite file, JSON
// file) without changing the service layer.
type DocumentStore interface {
	// Load returns the stored document. A store with no prior Save
	// returns models.DefaultDocument() and no error; an unreadable or
	// corrupt document returns an error for the caller to downgrade.
	Load(ctx context.Context) (models.Document, error)

	// Save replaces the stored document.
	Save(ctx context.Context, doc models.Document) error

	// Close releases any resources held by the store.
	Close() error
}
