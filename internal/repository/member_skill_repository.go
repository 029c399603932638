package repository

import (
	"context"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

type MemberSkillRepository interface {
	GetAll(ctx context.Context) ([]domain.MemberSkill, error)
	GetByMemberID(ctx context.Context, memberID string) ([]domain.MemberSkill, error)
	GetBySkillID(ctx context.Context, skillID string) ([]domain.MemberSkill, error)
	Add(ctx context.Context, ms domain.MemberSkill) error
	Delete(ctx context.Context, memberID, skillID string) error
	DeleteByMemberID(ctx context.Context, memberID string) error
}

type StoreMemberSkillRepository struct {
	s store.Store
}

func NewStoreMemberSkillRepository(s store.Store) *StoreMemberSkillRepository {
	return &StoreMemberSkillRepository{s: s}
}

func (r *StoreMemberSkillRepository) GetAll(ctx context.Context) ([]domain.MemberSkill, error) {
	return getAll[domain.MemberSkill](ctx, r.s, store.CollectionMemberSkills)
}

func (r *StoreMemberSkillRepository) GetByMemberID(ctx context.Context, memberID string) ([]domain.MemberSkill, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MemberSkill, 0)
	for _, ms := range items {
		if ms.MemberID == memberID {
			out = append(out, ms)
		}
	}
	return out, nil
}

func (r *StoreMemberSkillRepository) GetBySkillID(ctx context.Context, skillID string) ([]domain.MemberSkill, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MemberSkill, 0)
	for _, ms := range items {
		if ms.SkillID == skillID {
			out = append(out, ms)
		}
	}
	return out, nil
}

// Add overwrites by (memberId, skillId): a write for an existing pair
// replaces scaleId and proficiencyValue in place instead of appending.
func (r *StoreMemberSkillRepository) Add(ctx context.Context, ms domain.MemberSkill) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.MemberID == ms.MemberID && it.SkillID == ms.SkillID {
			items[i] = ms
			return saveAll(ctx, r.s, store.CollectionMemberSkills, items)
		}
	}
	return saveAll(ctx, r.s, store.CollectionMemberSkills, append(items, ms))
}

func (r *StoreMemberSkillRepository) Delete(ctx context.Context, memberID, skillID string) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.MemberSkill, 0, len(items))
	removed := false
	for _, it := range items {
		if it.MemberID == memberID && it.SkillID == skillID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return nil
	}
	return saveAll(ctx, r.s, store.CollectionMemberSkills, kept)
}

func (r *StoreMemberSkillRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.MemberSkill, 0, len(items))
	removed := false
	for _, it := range items {
		if it.MemberID == memberID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return nil
	}
	return saveAll(ctx, r.s, store.CollectionMemberSkills, kept)
}
