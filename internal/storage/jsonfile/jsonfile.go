// Package jsonfile provides a plain-file implementation of the
// storage.DocumentStore interface: the document as pretty-printed JSON at
// a fixed path. Writes are atomic, going through a temp file that replaces
// the real one with os.Rename, so a crash mid-write never corrupts the
// existing document.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/perrrrrrrrr/prism-bills-app/internal/models"
	"github.com/perrrrrrrrr/prism-bills-app/internal/storage"
)

// Ensure Store implements storage.DocumentStore
var _ storage.DocumentStore = (*Store)(nil)

// Store implements storage.DocumentStore on a single JSON file.
type Store struct {
	path string
}

// New creates a Store writing to the given path, creating parent
// directories as needed. The file itself is created on first Save.
func New(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create document directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Close is a no-op; the file is only held open during Load and Save.
func (s *Store) Close() error {
	return nil
}

// Load reads and decodes the document file. A missing file yields the
// default document.
func (s *Store) Load(_ context.Context) (models.Document, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return models.DefaultDocument(), nil
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to open document file: %w", err)
	}
	defer f.Close()

	var doc models.Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return models.Document{}, fmt.Errorf("failed to decode document file: %w", err)
	}
	return doc, nil
}

// Save writes the document to a temp file and renames it over the real
// path. Indented output keeps the file hand-inspectable.
func (s *Store) Save(_ context.Context, doc models.Document) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp document file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to flush document file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace document file: %w", err)
	}
	return nil
}
