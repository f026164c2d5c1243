// Package jsonfile keeps small pieces of editor state in JSON files under the
// user's state directory.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/colonyops/cic/internal/core/history"
)

const historyVersion = 1

// historyDoc is the on-disk layout. Entries are stored newest first.
type historyDoc struct {
	Version int             `json:"version"`
	Entries []history.Entry `json:"entries"`
}

// HistoryStore implements history.Store on top of a single JSON document.
// Writes go through a temp file and a rename so a crash never leaves a
// truncated history behind.
type HistoryStore struct {
	path string
	mu   sync.Mutex
}

var _ history.Store = (*HistoryStore)(nil)

// NewHistoryStore returns a store backed by the file at path. The file and
// its directory are created on the first Save.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Path returns the backing file.
func (s *HistoryStore) Path() string { return s.path }

// List returns all entries, newest first.
func (s *HistoryStore) List(ctx context.Context) ([]history.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Entries, nil
}

// Save records entry as the newest command. A repeat of the newest entry for
// the same file replaces it instead of adding a line. maxEntries > 0 caps the
// number of entries kept.
func (s *HistoryStore) Save(ctx context.Context, entry history.Entry, maxEntries int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	rest := doc.Entries
	if len(rest) > 0 && rest[0].Command == entry.Command && rest[0].File == entry.File {
		rest = rest[1:]
	}

	entries := make([]history.Entry, 0, len(rest)+1)
	entries = append(entries, entry)
	entries = append(entries, rest...)
	if maxEntries > 0 && len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	doc.Entries = entries
	return s.write(doc)
}

// Clear removes every entry. A missing file is not an error.
func (s *HistoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *HistoryStore) read() (historyDoc, error) {
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return historyDoc{Version: historyVersion}, nil
	case err != nil:
		return historyDoc{}, fmt.Errorf("read history: %w", err)
	case len(data) == 0:
		return historyDoc{Version: historyVersion}, nil
	}

	var doc historyDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return historyDoc{}, fmt.Errorf("decode history %s: %w", s.path, err)
	}
	if doc.Version > historyVersion {
		return historyDoc{}, fmt.Errorf("history %s has version %d, newest supported is %d", s.path, doc.Version, historyVersion)
	}
	doc.Version = historyVersion
	return doc, nil
}

func (s *HistoryStore) write(doc historyDoc) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return os.Rename(tmp, s.path)
}
