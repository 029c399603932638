package repository

import (
	"context"
	"strings"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

type KnowledgeAreaRepository interface {
	GetAll(ctx context.Context) ([]domain.KnowledgeArea, error)
	GetByID(ctx context.Context, id string) (domain.KnowledgeArea, bool, error)
	GetByName(ctx context.Context, name string) (domain.KnowledgeArea, bool, error)
	Add(ctx context.Context, ka domain.KnowledgeArea) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

type StoreKnowledgeAreaRepository struct {
	s store.Store
}

func NewStoreKnowledgeAreaRepository(s store.Store) *StoreKnowledgeAreaRepository {
	return &StoreKnowledgeAreaRepository{s: s}
}

func (r *StoreKnowledgeAreaRepository) GetAll(ctx context.Context) ([]domain.KnowledgeArea, error) {
	return getAll[domain.KnowledgeArea](ctx, r.s, store.CollectionKnowledgeAreas)
}

func (r *StoreKnowledgeAreaRepository) GetByID(ctx context.Context, id string) (domain.KnowledgeArea, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.KnowledgeArea{}, false, err
	}
	for _, ka := range items {
		if ka.ID == id {
			return ka, true, nil
		}
	}
	return domain.KnowledgeArea{}, false, nil
}

func (r *StoreKnowledgeAreaRepository) GetByName(ctx context.Context, name string) (domain.KnowledgeArea, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.KnowledgeArea{}, false, err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, ka := range items {
		if strings.ToLower(strings.TrimSpace(ka.Name)) == want {
			return ka, true, nil
		}
	}
	return domain.KnowledgeArea{}, false, nil
}

func (r *StoreKnowledgeAreaRepository) Add(ctx context.Context, ka domain.KnowledgeArea) error {
	return appendRow(ctx, r.s, store.CollectionKnowledgeAreas, ka)
}

func (r *StoreKnowledgeAreaRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	return patchByID(ctx, r.s, store.CollectionKnowledgeAreas, id, patch)
}

func (r *StoreKnowledgeAreaRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.s, store.CollectionKnowledgeAreas, id)
}
