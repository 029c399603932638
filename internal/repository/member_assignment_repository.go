package repository

import (
	"context"
	"sort"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

type MemberAssignmentRepository interface {
	GetAll(ctx context.Context) ([]domain.MemberAssignment, error)
	GetByID(ctx context.Context, id string) (domain.MemberAssignment, bool, error)
	GetByMemberID(ctx context.Context, memberID string) ([]domain.MemberAssignment, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.MemberAssignment, error)
	Add(ctx context.Context, a domain.MemberAssignment) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
	DeleteByMemberID(ctx context.Context, memberID string) error
}

type StoreMemberAssignmentRepository struct {
	s store.Store
}

func NewStoreMemberAssignmentRepository(s store.Store) *StoreMemberAssignmentRepository {
	return &StoreMemberAssignmentRepository{s: s}
}

func (r *StoreMemberAssignmentRepository) GetAll(ctx context.Context) ([]domain.MemberAssignment, error) {
	return getAll[domain.MemberAssignment](ctx, r.s, store.CollectionMemberAssignments)
}

func (r *StoreMemberAssignmentRepository) GetByID(ctx context.Context, id string) (domain.MemberAssignment, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.MemberAssignment{}, false, err
	}
	for _, a := range items {
		if a.ID == id {
			return a, true, nil
		}
	}
	return domain.MemberAssignment{}, false, nil
}

// GetByMemberID returns the member's assignments chronologically by start
// date; history views consume them in order.
func (r *StoreMemberAssignmentRepository) GetByMemberID(ctx context.Context, memberID string) ([]domain.MemberAssignment, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MemberAssignment, 0)
	for _, a := range items {
		if a.MemberID == memberID {
			out = append(out, a)
		}
	}
	sortByStartDate(out)
	return out, nil
}

func (r *StoreMemberAssignmentRepository) GetByClientID(ctx context.Context, clientID string) ([]domain.MemberAssignment, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MemberAssignment, 0)
	for _, a := range items {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	sortByStartDate(out)
	return out, nil
}

func (r *StoreMemberAssignmentRepository) Add(ctx context.Context, a domain.MemberAssignment) error {
	return appendRow(ctx, r.s, store.CollectionMemberAssignments, a)
}

func (r *StoreMemberAssignmentRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	return patchByID(ctx, r.s, store.CollectionMemberAssignments, id, patch)
}

func (r *StoreMemberAssignmentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.s, store.CollectionMemberAssignments, id)
}

func (r *StoreMemberAssignmentRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.MemberAssignment, 0, len(items))
	removed := false
	for _, a := range items {
		if a.MemberID == memberID {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return nil
	}
	return saveAll(ctx, r.s, store.CollectionMemberAssignments, kept)
}

func sortByStartDate(items []domain.MemberAssignment) {
	// ISO dates sort lexicographically.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartDate < items[j].StartDate
	})
}
