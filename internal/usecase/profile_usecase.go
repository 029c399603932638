package usecase

import (
	"context"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"
)

type ProfileUsecase interface {
	ListProfiles(ctx context.Context) ([]domain.MemberProfile, error)
	GetProfile(ctx context.Context, id string) (domain.MemberProfile, bool, error)
	GetProfileByMemberID(ctx context.Context, memberID string) (domain.MemberProfile, bool, error)
	UpdateProfile(ctx context.Context, id string, patch map[string]any) error
}

// Profiles reads and patches member profiles. Creation and deletion are not
// exposed here: profiles live and die with their member.
type Profiles struct {
	profiles repository.MemberProfileRepository
	snapshot ContextInvalidator
}

func NewProfileUsecase(profiles repository.MemberProfileRepository, snapshot ContextInvalidator) *Profiles {
	return &Profiles{profiles: profiles, snapshot: snapshot}
}

func (u *Profiles) ListProfiles(ctx context.Context) ([]domain.MemberProfile, error) {
	items, err := u.profiles.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Profiles) GetProfile(ctx context.Context, id string) (domain.MemberProfile, bool, error) {
	p, ok, err := u.profiles.GetByID(ctx, id)
	if err != nil {
		return domain.MemberProfile{}, false, ErrInternal
	}
	return p, ok, nil
}

func (u *Profiles) GetProfileByMemberID(ctx context.Context, memberID string) (domain.MemberProfile, bool, error) {
	p, ok, err := u.profiles.GetByMemberID(ctx, memberID)
	if err != nil {
		return domain.MemberProfile{}, false, ErrInternal
	}
	return p, ok, nil
}

func (u *Profiles) UpdateProfile(ctx context.Context, id string, patch map[string]any) error {
	if id == "" || len(patch) == 0 {
		return ErrInvalidInput
	}
	if _, ok, err := u.profiles.GetByID(ctx, id); err != nil {
		return ErrInternal
	} else if !ok {
		return ErrNotFound
	}
	if err := u.profiles.Update(ctx, id, patch); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}
