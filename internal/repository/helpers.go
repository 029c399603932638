package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"skills-radar/internal/store"
)

func decodeRows[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, raw := range rows {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func encodeRows[T any](items []T) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		b, err := json.Marshal(it)
		if err != nil {
			return nil, fmt.Errorf("encode row: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func getAll[T any](ctx context.Context, s store.Store, coll string) ([]T, error) {
	rows, err := s.Get(ctx, coll)
	if err != nil {
		return nil, err
	}
	return decodeRows[T](rows)
}

func saveAll[T any](ctx context.Context, s store.Store, coll string, items []T) error {
	rows, err := encodeRows(items)
	if err != nil {
		return err
	}
	return s.Set(ctx, coll, rows)
}

func appendRow[T any](ctx context.Context, s store.Store, coll string, item T) error {
	rows, err := s.Get(ctx, coll)
	if err != nil {
		return err
	}
	b, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	return s.Set(ctx, coll, append(rows, b))
}

// patchByID merges the patch fields into the stored row with the given id.
// The id field itself is never overwritten. An absent id is a no-op, not an
// error, matching the repository contract.
func patchByID(ctx context.Context, s store.Store, coll, id string, patch map[string]any) error {
	rows, err := s.Get(ctx, coll)
	if err != nil {
		return err
	}

	changed := false
	for i, raw := range rows {
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return fmt.Errorf("decode row: %w", err)
		}
		if sid, _ := m["id"].(string); sid != id {
			continue
		}
		for k, v := range patch {
			if k == "id" {
				continue
			}
			m[k] = v
		}
		b, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("encode row: %w", err)
		}
		rows[i] = b
		changed = true
		break
	}

	if !changed {
		return nil
	}
	return s.Set(ctx, coll, rows)
}

func deleteByID(ctx context.Context, s store.Store, coll, id string) error {
	rows, err := s.Get(ctx, coll)
	if err != nil {
		return err
	}

	kept := make([]json.RawMessage, 0, len(rows))
	removed := false
	for _, raw := range rows {
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return fmt.Errorf("decode row: %w", err)
		}
		if sid, _ := m["id"].(string); sid == id {
			removed = true
			continue
		}
		kept = append(kept, raw)
	}

	if !removed {
		return nil
	}
	return s.Set(ctx, coll, kept)
}
