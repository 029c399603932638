package repository

import (
	"context"
	"strings"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

type ScaleRepository interface {
	GetAll(ctx context.Context) ([]domain.Scale, error)
	GetByID(ctx context.Context, id string) (domain.Scale, bool, error)
	GetByName(ctx context.Context, name string) (domain.Scale, bool, error)
	Add(ctx context.Context, sc domain.Scale) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

type StoreScaleRepository struct {
	s store.Store
}

func NewStoreScaleRepository(s store.Store) *StoreScaleRepository {
	return &StoreScaleRepository{s: s}
}

func (r *StoreScaleRepository) GetAll(ctx context.Context) ([]domain.Scale, error) {
	return getAll[domain.Scale](ctx, r.s, store.CollectionScales)
}

func (r *StoreScaleRepository) GetByID(ctx context.Context, id string) (domain.Scale, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.Scale{}, false, err
	}
	for _, sc := range items {
		if sc.ID == id {
			return sc, true, nil
		}
	}
	return domain.Scale{}, false, nil
}

func (r *StoreScaleRepository) GetByName(ctx context.Context, name string) (domain.Scale, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.Scale{}, false, err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, sc := range items {
		if strings.ToLower(strings.TrimSpace(sc.Name)) == want {
			return sc, true, nil
		}
	}
	return domain.Scale{}, false, nil
}

func (r *StoreScaleRepository) Add(ctx context.Context, sc domain.Scale) error {
	return appendRow(ctx, r.s, store.CollectionScales, sc)
}

func (r *StoreScaleRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	return patchByID(ctx, r.s, store.CollectionScales, id, patch)
}

func (r *StoreScaleRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.s, store.CollectionScales, id)
}
