package repository

import (
	"context"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

type MemberProfileRepository interface {
	GetAll(ctx context.Context) ([]domain.MemberProfile, error)
	GetByID(ctx context.Context, id string) (domain.MemberProfile, bool, error)
	GetByMemberID(ctx context.Context, memberID string) (domain.MemberProfile, bool, error)
	Add(ctx context.Context, p domain.MemberProfile) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
	DeleteByMemberID(ctx context.Context, memberID string) error
}

type StoreMemberProfileRepository struct {
	s store.Store
}

func NewStoreMemberProfileRepository(s store.Store) *StoreMemberProfileRepository {
	return &StoreMemberProfileRepository{s: s}
}

func (r *StoreMemberProfileRepository) GetAll(ctx context.Context) ([]domain.MemberProfile, error) {
	return getAll[domain.MemberProfile](ctx, r.s, store.CollectionMemberProfiles)
}

func (r *StoreMemberProfileRepository) GetByID(ctx context.Context, id string) (domain.MemberProfile, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.MemberProfile{}, false, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.MemberProfile{}, false, nil
}

func (r *StoreMemberProfileRepository) GetByMemberID(ctx context.Context, memberID string) (domain.MemberProfile, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.MemberProfile{}, false, err
	}
	for _, p := range items {
		if p.MemberID == memberID {
			return p, true, nil
		}
	}
	return domain.MemberProfile{}, false, nil
}

func (r *StoreMemberProfileRepository) Add(ctx context.Context, p domain.MemberProfile) error {
	return appendRow(ctx, r.s, store.CollectionMemberProfiles, p)
}

func (r *StoreMemberProfileRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	return patchByID(ctx, r.s, store.CollectionMemberProfiles, id, patch)
}

func (r *StoreMemberProfileRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.s, store.CollectionMemberProfiles, id)
}

func (r *StoreMemberProfileRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.MemberProfile, 0, len(items))
	removed := false
	for _, p := range items {
		if p.MemberID == memberID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}
	return saveAll(ctx, r.s, store.CollectionMemberProfiles, kept)
}
