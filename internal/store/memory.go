package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps the document in process memory. Used by tests and as a
// throwaway dev driver.
type MemoryStore struct {
	mu  sync.Mutex
	doc *Document
}

func NewMemory() *MemoryStore {
	return &MemoryStore{doc: NewDocument()}
}

func (s *MemoryStore) Get(_ context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.doc.Collections[collection]
	out := make([]json.RawMessage, len(rows))
	copy(out, rows)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, collection string, rows []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]json.RawMessage, len(rows))
	copy(cp, rows)
	s.doc.Collections[collection] = cp
	return nil
}

func (s *MemoryStore) IsInitialized(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.IsInitialized, nil
}

func (s *MemoryStore) MarkInitialized(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.IsInitialized = true
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
