package usecase

import (
	"context"
	"strings"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"

	"github.com/google/uuid"
)

type CreateMemberInput struct {
	CorporateEmail     string
	FullName           string
	HireDate           string
	Category           string
	Location           string
	AvailabilityStatus string
	PhotoURL           string
}

type AddMemberSkillInput struct {
	MemberID         string
	SkillID          string
	ScaleID          string
	ProficiencyValue string
}

type MemberUsecase interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	GetMember(ctx context.Context, id string) (domain.Member, bool, error)
	CreateMember(ctx context.Context, in CreateMemberInput) (domain.Member, error)
	UpdateMember(ctx context.Context, id string, patch map[string]any) error
	DeleteMember(ctx context.Context, id string) error
	AddMemberSkill(ctx context.Context, in AddMemberSkillInput) error
	RemoveMemberSkill(ctx context.Context, memberID, skillID string) error
}

type Members struct {
	members      repository.MemberRepository
	profiles     repository.MemberProfileRepository
	memberSkills repository.MemberSkillRepository
	skills       repository.SkillRepository
	snapshot     ContextInvalidator
}

func NewMemberUsecase(
	members repository.MemberRepository,
	profiles repository.MemberProfileRepository,
	memberSkills repository.MemberSkillRepository,
	skills repository.SkillRepository,
	snapshot ContextInvalidator,
) *Members {
	return &Members{members: members, profiles: profiles, memberSkills: memberSkills, skills: skills, snapshot: snapshot}
}

func (u *Members) ListMembers(ctx context.Context) ([]domain.Member, error) {
	items, err := u.members.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Members) GetMember(ctx context.Context, id string) (domain.Member, bool, error) {
	m, ok, err := u.members.GetByID(ctx, id)
	if err != nil {
		return domain.Member{}, false, ErrInternal
	}
	return m, ok, nil
}

// CreateMember creates the member together with its empty profile; the two
// always exist as a pair.
func (u *Members) CreateMember(ctx context.Context, in CreateMemberInput) (domain.Member, error) {
	email := strings.TrimSpace(in.CorporateEmail)
	name := strings.TrimSpace(in.FullName)
	if email == "" || name == "" || strings.TrimSpace(in.HireDate) == "" {
		return domain.Member{}, ErrInvalidInput
	}
	if !domain.ValidCategory(in.Category) {
		return domain.Member{}, ErrInvalidInput
	}

	availability := in.AvailabilityStatus
	if availability == "" {
		availability = domain.AvailabilityAvailable
	}
	if !domain.ValidAvailability(availability) {
		return domain.Member{}, ErrInvalidInput
	}

	if _, exists, err := u.members.GetByEmail(ctx, email); err != nil {
		return domain.Member{}, ErrInternal
	} else if exists {
		return domain.Member{}, ErrInvalidInput
	}

	m := domain.Member{
		ID:                 uuid.NewString(),
		CorporateEmail:     email,
		FullName:           name,
		HireDate:           strings.TrimSpace(in.HireDate),
		Category:           in.Category,
		Location:           strings.TrimSpace(in.Location),
		AvailabilityStatus: availability,
		PhotoURL:           strings.TrimSpace(in.PhotoURL),
	}
	if err := u.members.Add(ctx, m); err != nil {
		return domain.Member{}, ErrInternal
	}

	if err := u.profiles.Add(ctx, EmptyProfileFor(m.ID)); err != nil {
		return domain.Member{}, ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return m, nil
}

func (u *Members) UpdateMember(ctx context.Context, id string, patch map[string]any) error {
	if id == "" || len(patch) == 0 {
		return ErrInvalidInput
	}
	if c, ok := patch["category"].(string); ok && !domain.ValidCategory(c) {
		return ErrInvalidInput
	}
	if a, ok := patch["availabilityStatus"].(string); ok && !domain.ValidAvailability(a) {
		return ErrInvalidInput
	}
	if err := u.members.Update(ctx, id, patch); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

// DeleteMember cascades to the member's profile and all its skill rows; no
// orphans remain.
func (u *Members) DeleteMember(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := u.members.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	if err := u.profiles.DeleteByMemberID(ctx, id); err != nil {
		return ErrInternal
	}
	if err := u.memberSkills.DeleteByMemberID(ctx, id); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

// AddMemberSkill has find-or-create semantics keyed on (memberId, skillId):
// writing an existing pair overwrites scale and proficiency in place.
func (u *Members) AddMemberSkill(ctx context.Context, in AddMemberSkillInput) error {
	if in.MemberID == "" || in.SkillID == "" {
		return ErrInvalidInput
	}

	if _, ok, err := u.members.GetByID(ctx, in.MemberID); err != nil {
		return ErrInternal
	} else if !ok {
		return ErrMemberNotFound
	}
	if _, ok, err := u.skills.GetByID(ctx, in.SkillID); err != nil {
		return ErrInternal
	} else if !ok {
		return ErrSkillNotFound
	}

	ms := domain.MemberSkill{
		MemberID:         in.MemberID,
		SkillID:          in.SkillID,
		ScaleID:          in.ScaleID,
		ProficiencyValue: in.ProficiencyValue,
	}
	if err := u.memberSkills.Add(ctx, ms); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Members) RemoveMemberSkill(ctx context.Context, memberID, skillID string) error {
	if memberID == "" || skillID == "" {
		return ErrInvalidInput
	}
	if err := u.memberSkills.Delete(ctx, memberID, skillID); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

// EmptyProfileFor builds the blank profile created alongside every member.
func EmptyProfileFor(memberID string) domain.MemberProfile {
	return domain.MemberProfile{
		ID:                       uuid.NewString(),
		MemberID:                 memberID,
		Assignments:              []domain.ProfileAssignment{},
		RolesAndTasks:            []string{},
		AppreciationsFromClients: []string{},
		FeedbackComments:         []string{},
		PeriodsInTalentPool:      []string{},
		SocialConnections:        []string{},
		Badges:                   []string{},
		Certifications:           []string{},
		Assessments:              []string{},
		ProfessionalGoals:        []string{},
		CareerInterests:          []string{},
	}
}
