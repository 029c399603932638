package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the radar document as a single JSON file. Writes are
// atomic (temp file + rename) and serialized with a mutex, so concurrent
// imports against the same collection are last-writer-wins at row level but
// never corrupt the document.
type FileStore struct {
	path string

	mu  sync.Mutex
	doc *Document
}

func OpenFile(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("empty store path")
	}

	s := &FileStore{path: path, doc: NewDocument()}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(b) == 0 {
		return s, nil
	}

	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("corrupted store file %s: %w", path, err)
	}
	if doc.Collections == nil {
		doc.Collections = make(map[string][]json.RawMessage)
	}
	s.doc = &doc
	return s, nil
}

func (s *FileStore) Get(_ context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.doc.Collections[collection]
	out := make([]json.RawMessage, len(rows))
	copy(out, rows)
	return out, nil
}

func (s *FileStore) Set(_ context.Context, collection string, rows []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]json.RawMessage, len(rows))
	copy(cp, rows)
	s.doc.Collections[collection] = cp
	return s.flushLocked()
}

func (s *FileStore) IsInitialized(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.IsInitialized, nil
}

func (s *FileStore) MarkInitialized(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.IsInitialized = true
	return s.flushLocked()
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) flushLocked() error {
	b, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".radar-*.json")
	if err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
