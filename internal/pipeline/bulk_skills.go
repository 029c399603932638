package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"
	"skills-radar/internal/store"
	"skills-radar/internal/usecase"

	"github.com/google/uuid"
)

// BulkRow is one record of the historical skills-survey export.
type BulkRow struct {
	Date      string `json:"Date"`
	Email     string `json:"Email"`
	Skill     string `json:"Skill"`
	Expertise string `json:"Expertise Full Name"`
}

// Skill names that are really open-ended survey prompts, not skills. Rows
// carrying them are dropped unless the expertise text still names a level.
var promptMarkers = []string{"other", "share", "please", "additional"}

type BulkSummary struct {
	SkippedAlreadyInitialized bool `json:"skippedAlreadyInitialized"`
	MembersCreated            int  `json:"membersCreated"`
	SkillsCreated             int  `json:"skillsCreated"`
	MemberSkillsWritten       int  `json:"memberSkillsWritten"`
	RowsSkipped               int  `json:"rowsSkipped"`
}

// BulkIngestor loads the one-off skills-survey dataset into the store. It is
// idempotent only through the store's isInitialized guard: once a run has
// completed, later runs are no-ops so manual edits are never overwritten.
type BulkIngestor struct {
	store          store.Store
	members        repository.MemberRepository
	profiles       repository.MemberProfileRepository
	memberSkills   repository.MemberSkillRepository
	skills         repository.SkillRepository
	scales         repository.ScaleRepository
	knowledgeAreas repository.KnowledgeAreaRepository
	categories     repository.SkillCategoryRepository

	logger *log.Logger
	now    func() time.Time
}

func NewBulkIngestor(
	s store.Store,
	members repository.MemberRepository,
	profiles repository.MemberProfileRepository,
	memberSkills repository.MemberSkillRepository,
	skills repository.SkillRepository,
	scales repository.ScaleRepository,
	knowledgeAreas repository.KnowledgeAreaRepository,
	categories repository.SkillCategoryRepository,
	logger *log.Logger,
) *BulkIngestor {
	if logger == nil {
		logger = log.Default()
	}
	return &BulkIngestor{
		store:          s,
		members:        members,
		profiles:       profiles,
		memberSkills:   memberSkills,
		skills:         skills,
		scales:         scales,
		knowledgeAreas: knowledgeAreas,
		categories:     categories,
		logger:         logger,
		now:            time.Now,
	}
}

// ParseBulkRows decodes the survey export, a JSON array of records.
func ParseBulkRows(data []byte) ([]BulkRow, error) {
	var rows []BulkRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableFile, err)
	}
	return rows, nil
}

func (ing *BulkIngestor) Run(ctx context.Context, rows []BulkRow) (BulkSummary, error) {
	done, err := ing.store.IsInitialized(ctx)
	if err != nil {
		return BulkSummary{}, err
	}
	if done {
		return BulkSummary{SkippedAlreadyInitialized: true}, nil
	}

	defaults, err := ing.ensureDefaults(ctx)
	if err != nil {
		return BulkSummary{}, err
	}

	var sum BulkSummary
	for _, row := range rows {
		email := strings.ToLower(strings.TrimSpace(row.Email))
		skillName := strings.TrimSpace(row.Skill)
		if email == "" || skillName == "" {
			sum.RowsSkipped++
			continue
		}
		if looksLikePrompt(skillName) && !hasRecognizedLevel(row.Expertise) {
			sum.RowsSkipped++
			continue
		}

		member, created, err := ing.findOrCreateMember(ctx, email, row.Date)
		if err != nil {
			return sum, err
		}
		if created {
			sum.MembersCreated++
		}

		skill, created, err := ing.findOrCreateSkill(ctx, skillName, defaults)
		if err != nil {
			return sum, err
		}
		if created {
			sum.SkillsCreated++
		}

		level := ProficiencyFromText(row.Expertise)
		ms := domain.MemberSkill{
			MemberID:         member.ID,
			SkillID:          skill.ID,
			ScaleID:          defaults.scale.ID,
			ProficiencyValue: strconv.Itoa(level),
		}
		// Repository add overwrites by (member, skill): later survey rows
		// for the same pair win.
		if err := ing.memberSkills.Add(ctx, ms); err != nil {
			return sum, err
		}
		sum.MemberSkillsWritten++
	}

	if err := ing.store.MarkInitialized(ctx); err != nil {
		return sum, err
	}
	ing.logger.Printf("[Ingest] bulk skills done | members_created=%d skills_created=%d member_skills=%d skipped=%d",
		sum.MembersCreated, sum.SkillsCreated, sum.MemberSkillsWritten, sum.RowsSkipped)
	return sum, nil
}

type bulkDefaults struct {
	area     domain.KnowledgeArea
	category domain.SkillCategory
	scale    domain.Scale
}

// ensureDefaults finds or creates the single knowledge area, category and
// scale every bulk-ingested skill attaches to. Created once per run, keyed
// by name so a forced re-run never duplicates them.
func (ing *BulkIngestor) ensureDefaults(ctx context.Context) (bulkDefaults, error) {
	var d bulkDefaults

	area, ok, err := ing.knowledgeAreas.GetByName(ctx, "General")
	if err != nil {
		return d, err
	}
	if !ok {
		area = domain.KnowledgeArea{
			ID:          uuid.NewString(),
			Name:        "General",
			Description: "Default knowledge area for bulk-ingested skills",
		}
		if err := ing.knowledgeAreas.Add(ctx, area); err != nil {
			return d, err
		}
	}
	d.area = area

	cat, ok, err := ing.categories.GetByName(ctx, "Technical")
	if err != nil {
		return d, err
	}
	if !ok {
		cat = domain.SkillCategory{
			ID:        uuid.NewString(),
			Name:      "Technical",
			Criterion: "Default category for bulk-ingested skills",
		}
		if err := ing.categories.Add(ctx, cat); err != nil {
			return d, err
		}
	}
	d.category = cat

	scale, ok, err := ing.scales.GetByName(ctx, "Expertise")
	if err != nil {
		return d, err
	}
	if !ok {
		scale = domain.Scale{
			ID:   uuid.NewString(),
			Name: "Expertise",
			Type: domain.ScaleTypeQualitative,
			Values: []string{
				"Don't know",
				"Know but didn't use",
				"Know well",
				"Wide knowledge",
				"Expert",
			},
		}
		if err := ing.scales.Add(ctx, scale); err != nil {
			return d, err
		}
	}
	d.scale = scale

	return d, nil
}

func (ing *BulkIngestor) findOrCreateMember(ctx context.Context, email, rowDate string) (domain.Member, bool, error) {
	m, ok, err := ing.members.GetByEmail(ctx, email)
	if err != nil {
		return domain.Member{}, false, err
	}
	if ok {
		return m, false, nil
	}

	hireDate := strings.TrimSpace(rowDate)
	if hireDate == "" {
		hireDate = ing.now().UTC().Format("2006-01-02")
	}
	m = domain.Member{
		ID:                 uuid.NewString(),
		CorporateEmail:     email,
		FullName:           FullNameFromEmail(email),
		HireDate:           hireDate,
		Category:           domain.CategoryStarter,
		Location:           "Unknown",
		AvailabilityStatus: domain.AvailabilityAvailable,
	}
	if err := ing.members.Add(ctx, m); err != nil {
		return domain.Member{}, false, err
	}
	if err := ing.profiles.Add(ctx, usecase.EmptyProfileFor(m.ID)); err != nil {
		return domain.Member{}, false, err
	}
	return m, true, nil
}

func (ing *BulkIngestor) findOrCreateSkill(ctx context.Context, name string, d bulkDefaults) (domain.Skill, bool, error) {
	sk, ok, err := ing.skills.GetByName(ctx, name)
	if err != nil {
		return domain.Skill{}, false, err
	}
	if ok {
		return sk, false, nil
	}

	sk = domain.Skill{
		ID:              uuid.NewString(),
		Name:            name,
		KnowledgeAreaID: d.area.ID,
		SkillCategoryID: d.category.ID,
	}
	if err := ing.skills.Add(ctx, sk); err != nil {
		return domain.Skill{}, false, err
	}
	return sk, true, nil
}

func looksLikePrompt(skillName string) bool {
	n := strings.ToLower(skillName)
	for _, marker := range promptMarkers {
		if strings.Contains(n, marker) {
			return true
		}
	}
	return false
}

// FullNameFromEmail synthesizes a display name by title-casing the dot-
// separated segments of the email's local part.
func FullNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	segments := strings.Split(local, ".")
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(seg[:1])+seg[1:])
	}
	if len(parts) == 0 {
		return email
	}
	return strings.Join(parts, " ")
}
