package usecase

import (
	"context"
	"strings"
	"time"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"

	"github.com/google/uuid"
)

type CreateSkillInput struct {
	Name            string
	Purpose         string
	KnowledgeAreaID string
	SkillCategoryID string
}

type CreateScaleInput struct {
	Name   string
	Type   string
	Values []string
}

type CreateClientInput struct {
	Name        string
	Description string
	Industry    string
	Location    string
	Status      string
}

type CatalogUsecase interface {
	ListSkills(ctx context.Context) ([]domain.Skill, error)
	GetSkill(ctx context.Context, id string) (domain.Skill, bool, error)
	CreateSkill(ctx context.Context, in CreateSkillInput) (domain.Skill, error)
	UpdateSkill(ctx context.Context, id string, patch map[string]any) error
	DeleteSkill(ctx context.Context, id string) error

	ListScales(ctx context.Context) ([]domain.Scale, error)
	CreateScale(ctx context.Context, in CreateScaleInput) (domain.Scale, error)
	UpdateScale(ctx context.Context, id string, patch map[string]any) error
	DeleteScale(ctx context.Context, id string) error

	ListKnowledgeAreas(ctx context.Context) ([]domain.KnowledgeArea, error)
	CreateKnowledgeArea(ctx context.Context, name, description string) (domain.KnowledgeArea, error)
	UpdateKnowledgeArea(ctx context.Context, id string, patch map[string]any) error
	DeleteKnowledgeArea(ctx context.Context, id string) error

	ListSkillCategories(ctx context.Context) ([]domain.SkillCategory, error)
	CreateSkillCategory(ctx context.Context, name, criterion string) (domain.SkillCategory, error)
	UpdateSkillCategory(ctx context.Context, id string, patch map[string]any) error
	DeleteSkillCategory(ctx context.Context, id string) error

	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (domain.Client, bool, error)
	CreateClient(ctx context.Context, in CreateClientInput) (domain.Client, error)
	UpdateClient(ctx context.Context, id string, patch map[string]any) error
	DeleteClient(ctx context.Context, id string) error
}

// Catalog is the CRUD layer for the reference entities: skills, scales,
// knowledge areas, skill categories and clients.
type Catalog struct {
	skills          repository.SkillRepository
	scales          repository.ScaleRepository
	knowledgeAreas  repository.KnowledgeAreaRepository
	skillCategories repository.SkillCategoryRepository
	clients         repository.ClientRepository
	memberSkills    repository.MemberSkillRepository
	snapshot        ContextInvalidator

	now func() time.Time
}

func NewCatalogUsecase(
	skills repository.SkillRepository,
	scales repository.ScaleRepository,
	knowledgeAreas repository.KnowledgeAreaRepository,
	skillCategories repository.SkillCategoryRepository,
	clients repository.ClientRepository,
	memberSkills repository.MemberSkillRepository,
	snapshot ContextInvalidator,
) *Catalog {
	return &Catalog{
		skills:          skills,
		scales:          scales,
		knowledgeAreas:  knowledgeAreas,
		skillCategories: skillCategories,
		clients:         clients,
		memberSkills:    memberSkills,
		snapshot:        snapshot,
		now:             time.Now,
	}
}

func (u *Catalog) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	items, err := u.skills.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) GetSkill(ctx context.Context, id string) (domain.Skill, bool, error) {
	sk, ok, err := u.skills.GetByID(ctx, id)
	if err != nil {
		return domain.Skill{}, false, ErrInternal
	}
	return sk, ok, nil
}

func (u *Catalog) CreateSkill(ctx context.Context, in CreateSkillInput) (domain.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Skill{}, ErrInvalidInput
	}
	if _, exists, err := u.skills.GetByName(ctx, name); err != nil {
		return domain.Skill{}, ErrInternal
	} else if exists {
		return domain.Skill{}, ErrInvalidInput
	}

	sk := domain.Skill{
		ID:              uuid.NewString(),
		Name:            name,
		Purpose:         strings.TrimSpace(in.Purpose),
		KnowledgeAreaID: in.KnowledgeAreaID,
		SkillCategoryID: in.SkillCategoryID,
	}
	if err := u.skills.Add(ctx, sk); err != nil {
		return domain.Skill{}, ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return sk, nil
}

func (u *Catalog) UpdateSkill(ctx context.Context, id string, patch map[string]any) error {
	if id == "" || len(patch) == 0 {
		return ErrInvalidInput
	}
	if _, ok, err := u.skills.GetByID(ctx, id); err != nil {
		return ErrInternal
	} else if !ok {
		return ErrSkillNotFound
	}
	if err := u.skills.Update(ctx, id, patch); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

// DeleteSkill also removes every member-skill row that references the skill.
func (u *Catalog) DeleteSkill(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := u.skills.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	rows, err := u.memberSkills.GetBySkillID(ctx, id)
	if err != nil {
		return ErrInternal
	}
	for _, ms := range rows {
		if err := u.memberSkills.Delete(ctx, ms.MemberID, ms.SkillID); err != nil {
			return ErrInternal
		}
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Catalog) ListScales(ctx context.Context) ([]domain.Scale, error) {
	items, err := u.scales.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) CreateScale(ctx context.Context, in CreateScaleInput) (domain.Scale, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Scale{}, ErrInvalidInput
	}
	sc := domain.Scale{
		ID:     uuid.NewString(),
		Name:   name,
		Type:   in.Type,
		Values: in.Values,
	}
	if sc.Type == "" {
		sc.Type = domain.ScaleTypeQualitative
	}
	if sc.Values == nil {
		sc.Values = []string{}
	}
	if err := u.scales.Add(ctx, sc); err != nil {
		return domain.Scale{}, ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return sc, nil
}

func (u *Catalog) UpdateScale(ctx context.Context, id string, patch map[string]any) error {
	if id == "" || len(patch) == 0 {
		return ErrInvalidInput
	}
	if _, ok, err := u.scales.GetByID(ctx, id); err != nil {
		return ErrInternal
	} else if !ok {
		return ErrNotFound
	}
	if err := u.scales.Update(ctx, id, patch); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Catalog) DeleteScale(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := u.scales.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Catalog) ListKnowledgeAreas(ctx context.Context) ([]domain.KnowledgeArea, error) {
	items, err := u.knowledgeAreas.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) CreateKnowledgeArea(ctx context.Context, name, description string) (domain.KnowledgeArea, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.KnowledgeArea{}, ErrInvalidInput
	}
	ka := domain.KnowledgeArea{ID: uuid.NewString(), Name: name, Description: strings.TrimSpace(description)}
	if err := u.knowledgeAreas.Add(ctx, ka); err != nil {
		return domain.KnowledgeArea{}, ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return ka, nil
}

func (u *Catalog) UpdateKnowledgeArea(ctx context.Context, id string, patch map[string]any) error {
	if id == "" || len(patch) == 0 {
		return ErrInvalidInput
	}
	if _, ok, err := u.knowledgeAreas.GetByID(ctx, id); err != nil {
		return ErrInternal
	} else if !ok {
		return ErrNotFound
	}
	if err := u.knowledgeAreas.Update(ctx, id, patch); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Catalog) DeleteKnowledgeArea(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := u.knowledgeAreas.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Catalog) ListSkillCategories(ctx context.Context) ([]domain.SkillCategory, error) {
	items, err := u.skillCategories.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) CreateSkillCategory(ctx context.Context, name, criterion string) (domain.SkillCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.SkillCategory{}, ErrInvalidInput
	}
	sc := domain.SkillCategory{ID: uuid.NewString(), Name: name, Criterion: strings.TrimSpace(criterion)}
	if err := u.skillCategories.Add(ctx, sc); err != nil {
		return domain.SkillCategory{}, ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return sc, nil
}

func (u *Catalog) UpdateSkillCategory(ctx context.Context, id string, patch map[string]any) error {
	if id == "" || len(patch) == 0 {
		return ErrInvalidInput
	}
	if _, ok, err := u.skillCategories.GetByID(ctx, id); err != nil {
		return ErrInternal
	} else if !ok {
		return ErrNotFound
	}
	if err := u.skillCategories.Update(ctx, id, patch); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Catalog) DeleteSkillCategory(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := u.skillCategories.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Catalog) ListClients(ctx context.Context) ([]domain.Client, error) {
	items, err := u.clients.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) GetClient(ctx context.Context, id string) (domain.Client, bool, error) {
	c, ok, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return domain.Client{}, false, ErrInternal
	}
	return c, ok, nil
}

func (u *Catalog) CreateClient(ctx context.Context, in CreateClientInput) (domain.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Client{}, ErrInvalidInput
	}
	if _, exists, err := u.clients.GetByName(ctx, name); err != nil {
		return domain.Client{}, ErrInternal
	} else if exists {
		return domain.Client{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = domain.ClientActive
	}
	now := u.now().UTC()
	c := domain.Client{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Industry:    strings.TrimSpace(in.Industry),
		Location:    strings.TrimSpace(in.Location),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.clients.Add(ctx, c); err != nil {
		return domain.Client{}, ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return c, nil
}

func (u *Catalog) UpdateClient(ctx context.Context, id string, patch map[string]any) error {
	if id == "" || len(patch) == 0 {
		return ErrInvalidInput
	}
	if _, ok, err := u.clients.GetByID(ctx, id); err != nil {
		return ErrInternal
	} else if !ok {
		return ErrClientNotFound
	}
	patch["updatedAt"] = u.now().UTC().Format(time.RFC3339Nano)
	if err := u.clients.Update(ctx, id, patch); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Catalog) DeleteClient(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := u.clients.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}
