// Package sqlite provides a SQLite-backed implementation of the
// storage.DocumentStore interface. The document is serialized to JSON and
// held in a single keyed row, matching the whole-document read-modify-write
// model of the service layer.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/perrrrrrrrr/prism-bills-app/internal/models"
	"github.com/perrrrrrrrr/prism-bills-app/internal/storage"
)

// storeKey identifies the document row. Fixed: the store holds exactly
// one document.
const storeKey = "prism-bills-data"

const schema = `
CREATE TABLE IF NOT EXISTS document (
    key TEXT PRIMARY KEY,
    data BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// Ensure Store implements storage.DocumentStore
var _ storage.DocumentStore = (*Store)(nil)

// Store implements storage.DocumentStore using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given database path. It creates the
// parent directories and bootstraps the schema automatically.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads and decodes the stored document. A database with no document
// yet yields the default document.
func (s *Store) Load(ctx context.Context) (models.Document, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM document WHERE key = ?",
		storeKey,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return models.DefaultDocument(), nil
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

// Save serializes the document and replaces the stored row in one
// statement, so callers never observe a partial write.
func (s *Store) Save(ctx context.Context, doc models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO document (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		storeKey, data, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
