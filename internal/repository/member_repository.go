package repository

import (
	"context"
	"strings"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

type MemberRepository interface {
	GetAll(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id string) (domain.Member, bool, error)
	GetByEmail(ctx context.Context, email string) (domain.Member, bool, error)
	Add(ctx context.Context, m domain.Member) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

type StoreMemberRepository struct {
	s store.Store
}

func NewStoreMemberRepository(s store.Store) *StoreMemberRepository {
	return &StoreMemberRepository{s: s}
}

func (r *StoreMemberRepository) GetAll(ctx context.Context) ([]domain.Member, error) {
	return getAll[domain.Member](ctx, r.s, store.CollectionMembers)
}

func (r *StoreMemberRepository) GetByID(ctx context.Context, id string) (domain.Member, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.Member{}, false, err
	}
	for _, m := range items {
		if m.ID == id {
			return m, true, nil
		}
	}
	return domain.Member{}, false, nil
}

// GetByEmail matches case-insensitively; the corporate email is the natural
// key for import upserts.
func (r *StoreMemberRepository) GetByEmail(ctx context.Context, email string) (domain.Member, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.Member{}, false, err
	}
	want := strings.ToLower(strings.TrimSpace(email))
	for _, m := range items {
		if strings.ToLower(strings.TrimSpace(m.CorporateEmail)) == want {
			return m, true, nil
		}
	}
	return domain.Member{}, false, nil
}

func (r *StoreMemberRepository) Add(ctx context.Context, m domain.Member) error {
	return appendRow(ctx, r.s, store.CollectionMembers, m)
}

func (r *StoreMemberRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	return patchByID(ctx, r.s, store.CollectionMembers, id, patch)
}

func (r *StoreMemberRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.s, store.CollectionMembers, id)
}
