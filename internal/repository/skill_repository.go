package repository

import (
	"context"
	"strings"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

type SkillRepository interface {
	GetAll(ctx context.Context) ([]domain.Skill, error)
	GetByID(ctx context.Context, id string) (domain.Skill, bool, error)
	GetByName(ctx context.Context, name string) (domain.Skill, bool, error)
	GetByKnowledgeArea(ctx context.Context, knowledgeAreaID string) ([]domain.Skill, error)
	GetByCategory(ctx context.Context, skillCategoryID string) ([]domain.Skill, error)
	Add(ctx context.Context, s domain.Skill) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

type StoreSkillRepository struct {
	s store.Store
}

func NewStoreSkillRepository(s store.Store) *StoreSkillRepository {
	return &StoreSkillRepository{s: s}
}

func (r *StoreSkillRepository) GetAll(ctx context.Context) ([]domain.Skill, error) {
	return getAll[domain.Skill](ctx, r.s, store.CollectionSkills)
}

func (r *StoreSkillRepository) GetByID(ctx context.Context, id string) (domain.Skill, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.Skill{}, false, err
	}
	for _, sk := range items {
		if sk.ID == id {
			return sk, true, nil
		}
	}
	return domain.Skill{}, false, nil
}

// GetByName matches case-insensitively; import flows upsert skills by name.
func (r *StoreSkillRepository) GetByName(ctx context.Context, name string) (domain.Skill, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.Skill{}, false, err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, sk := range items {
		if strings.ToLower(strings.TrimSpace(sk.Name)) == want {
			return sk, true, nil
		}
	}
	return domain.Skill{}, false, nil
}

func (r *StoreSkillRepository) GetByKnowledgeArea(ctx context.Context, knowledgeAreaID string) ([]domain.Skill, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Skill, 0)
	for _, sk := range items {
		if sk.KnowledgeAreaID == knowledgeAreaID {
			out = append(out, sk)
		}
	}
	return out, nil
}

func (r *StoreSkillRepository) GetByCategory(ctx context.Context, skillCategoryID string) ([]domain.Skill, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Skill, 0)
	for _, sk := range items {
		if sk.SkillCategoryID == skillCategoryID {
			out = append(out, sk)
		}
	}
	return out, nil
}

func (r *StoreSkillRepository) Add(ctx context.Context, sk domain.Skill) error {
	return appendRow(ctx, r.s, store.CollectionSkills, sk)
}

func (r *StoreSkillRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	return patchByID(ctx, r.s, store.CollectionSkills, id, patch)
}

func (r *StoreSkillRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.s, store.CollectionSkills, id)
}
