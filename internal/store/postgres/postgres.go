package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"skills-radar/internal/database"
	"skills-radar/internal/store"
)

// DocumentStore keeps the whole radar document in a single jsonb row, so the
// storage contract stays identical to the file driver. Read-modify-write is
// serialized with a process-local mutex; the service owns its document.
type DocumentStore struct {
	db database.DB

	mu sync.Mutex
}

func Open(ctx context.Context, db database.DB) (*DocumentStore, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}

	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS radar_document (
			id  smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			doc jsonb NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("ensure radar_document table: %w", err)
	}

	empty, err := json.Marshal(store.NewDocument())
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(ctx,
		`INSERT INTO radar_document (id, doc) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`,
		empty,
	)
	if err != nil {
		return nil, fmt.Errorf("seed radar_document row: %w", err)
	}

	return &DocumentStore{db: db}, nil
}

func (s *DocumentStore) Get(ctx context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadLocked(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Collections[collection], nil
}

func (s *DocumentStore) Set(ctx context.Context, collection string, rows []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutateLocked(ctx, func(doc *store.Document) {
		doc.Collections[collection] = rows
	})
}

func (s *DocumentStore) IsInitialized(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadLocked(ctx)
	if err != nil {
		return false, err
	}
	return doc.IsInitialized, nil
}

func (s *DocumentStore) MarkInitialized(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutateLocked(ctx, func(doc *store.Document) {
		doc.IsInitialized = true
	})
}

func (s *DocumentStore) Close() error {
	return s.db.Close()
}

func (s *DocumentStore) loadLocked(ctx context.Context) (*store.Document, error) {
	var raw []byte
	row := s.db.QueryRow(ctx, `SELECT doc FROM radar_document WHERE id = 1`)
	if err := row.Scan(&raw); err != nil {
		return nil, fmt.Errorf("load radar document: %w", err)
	}

	doc := store.NewDocument()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("corrupted radar document: %w", err)
		}
	}
	if doc.Collections == nil {
		doc.Collections = make(map[string][]json.RawMessage)
	}
	return doc, nil
}

func (s *DocumentStore) mutateLocked(ctx context.Context, fn func(*store.Document)) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var raw []byte
	if err := tx.QueryRow(ctx, `SELECT doc FROM radar_document WHERE id = 1 FOR UPDATE`).Scan(&raw); err != nil {
		return fmt.Errorf("load radar document: %w", err)
	}

	doc := store.NewDocument()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, doc); err != nil {
			return fmt.Errorf("corrupted radar document: %w", err)
		}
	}
	if doc.Collections == nil {
		doc.Collections = make(map[string][]json.RawMessage)
	}

	fn(doc)

	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE radar_document SET doc = $1 WHERE id = 1`, b); err != nil {
		return fmt.Errorf("save radar document: %w", err)
	}
	return tx.Commit(ctx)
}
