package repository

import (
	"context"
	"strings"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

type SkillCategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.SkillCategory, error)
	GetByID(ctx context.Context, id string) (domain.SkillCategory, bool, error)
	GetByName(ctx context.Context, name string) (domain.SkillCategory, bool, error)
	Add(ctx context.Context, sc domain.SkillCategory) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

type StoreSkillCategoryRepository struct {
	s store.Store
}

func NewStoreSkillCategoryRepository(s store.Store) *StoreSkillCategoryRepository {
	return &StoreSkillCategoryRepository{s: s}
}

func (r *StoreSkillCategoryRepository) GetAll(ctx context.Context) ([]domain.SkillCategory, error) {
	return getAll[domain.SkillCategory](ctx, r.s, store.CollectionSkillCategories)
}

func (r *StoreSkillCategoryRepository) GetByID(ctx context.Context, id string) (domain.SkillCategory, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.SkillCategory{}, false, err
	}
	for _, sc := range items {
		if sc.ID == id {
			return sc, true, nil
		}
	}
	return domain.SkillCategory{}, false, nil
}

func (r *StoreSkillCategoryRepository) GetByName(ctx context.Context, name string) (domain.SkillCategory, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.SkillCategory{}, false, err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, sc := range items {
		if strings.ToLower(strings.TrimSpace(sc.Name)) == want {
			return sc, true, nil
		}
	}
	return domain.SkillCategory{}, false, nil
}

func (r *StoreSkillCategoryRepository) Add(ctx context.Context, sc domain.SkillCategory) error {
	return appendRow(ctx, r.s, store.CollectionSkillCategories, sc)
}

func (r *StoreSkillCategoryRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	return patchByID(ctx, r.s, store.CollectionSkillCategories, id, patch)
}

func (r *StoreSkillCategoryRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.s, store.CollectionSkillCategories, id)
}
