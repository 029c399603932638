package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"
	"skills-radar/internal/usecase"
)

// Mapping is the inferred shape of a free-form upload: which entity the rows
// represent and which source column feeds each target field.
type Mapping struct {
	Entity string            `json:"entity"`
	Fields map[string]string `json:"fields"`
}

// Target entities the smart import can commit to.
const (
	MappingEntityMember = "member"
	MappingEntitySkill  = "skill"
	MappingEntityClient = "client"
)

// Mapper infers a Mapping from a sample of rows. The production mapper asks
// the assistant facade; tests plug in a deterministic one.
type Mapper interface {
	InferMapping(ctx context.Context, sample []Row) (Mapping, error)
}

type SmartPreview struct {
	Rows    []Row         `json:"rows"`
	Choices []ArrayChoice `json:"choices,omitempty"`
	Mapping Mapping       `json:"mapping"`
}

type SmartImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// SmartImporter is the free-form import flow: sniff the payload into rows,
// let the mapper guess the target entity and columns, then commit the rows
// the operator kept.
type SmartImporter struct {
	members  repository.MemberRepository
	profiles repository.MemberProfileRepository
	skills   repository.SkillRepository
	clients  repository.ClientRepository
	mapper   Mapper

	now func() time.Time
}

func NewSmartImporter(
	members repository.MemberRepository,
	profiles repository.MemberProfileRepository,
	skills repository.SkillRepository,
	clients repository.ClientRepository,
	mapper Mapper,
) *SmartImporter {
	return &SmartImporter{
		members:  members,
		profiles: profiles,
		skills:   skills,
		clients:  clients,
		mapper:   mapper,
		now:      time.Now,
	}
}

// Preview parses the upload and, when it resolves to rows, infers a mapping
// from a bounded sample. When the payload holds several nested arrays the
// operator has to pick one first (SelectArray) and preview again.
func (imp *SmartImporter) Preview(ctx context.Context, data []byte) (SmartPreview, error) {
	doc, err := ParseFlexible(data)
	if err != nil {
		return SmartPreview{}, err
	}
	if len(doc.Choices) > 0 {
		return SmartPreview{Choices: doc.Choices}, nil
	}
	return imp.PreviewRows(ctx, doc.Rows)
}

func (imp *SmartImporter) PreviewRows(ctx context.Context, rows []Row) (SmartPreview, error) {
	sample := rows
	if len(sample) > 5 {
		sample = sample[:5]
	}
	mapping, err := imp.mapper.InferMapping(ctx, sample)
	if err != nil {
		return SmartPreview{}, err
	}
	return SmartPreview{Rows: rows, Mapping: mapping}, nil
}

// Commit writes the included rows under the given mapping. Unusable rows are
// reported and skipped; the flow only ever adds or updates, it never deletes
// pre-existing data.
func (imp *SmartImporter) Commit(ctx context.Context, rows []Row, mapping Mapping, excluded map[int]bool) (SmartImportResult, []string, error) {
	var res SmartImportResult
	rowErrs := make([]string, 0)

	for i, row := range rows {
		if excluded[i] {
			res.Skipped++
			continue
		}

		var err error
		var outcome string
		switch mapping.Entity {
		case MappingEntityMember:
			outcome, err = imp.commitMember(ctx, row, mapping)
		case MappingEntitySkill:
			outcome, err = imp.commitSkill(ctx, row, mapping)
		case MappingEntityClient:
			outcome, err = imp.commitClient(ctx, row, mapping)
		default:
			return res, rowErrs, fmt.Errorf("unsupported import entity %q", mapping.Entity)
		}
		if err != nil {
			return res, rowErrs, err
		}
		switch outcome {
		case "created":
			res.Created++
		case "updated":
			res.Updated++
		default:
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: %s", i+1, outcome))
			res.Skipped++
		}
	}
	return res, rowErrs, nil
}

func (imp *SmartImporter) commitMember(ctx context.Context, row Row, mapping Mapping) (string, error) {
	email := strings.ToLower(mapped(row, mapping, "corporateEmail"))
	if email == "" {
		return "missing email", nil
	}

	existing, found, err := imp.members.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if found {
		patch := map[string]any{}
		if v := mapped(row, mapping, "fullName"); v != "" {
			patch["fullName"] = v
		}
		if v := mapped(row, mapping, "location"); v != "" {
			patch["location"] = v
		}
		if v := mapped(row, mapping, "category"); domain.ValidCategory(v) {
			patch["category"] = v
		}
		if len(patch) == 0 {
			return "updated", nil
		}
		return "updated", imp.members.Update(ctx, existing.ID, patch)
	}

	name := mapped(row, mapping, "fullName")
	if name == "" {
		name = FullNameFromEmail(email)
	}
	category := mapped(row, mapping, "category")
	if !domain.ValidCategory(category) {
		category = domain.CategoryStarter
	}
	hireDate := mapped(row, mapping, "hireDate")
	if hireDate == "" {
		hireDate = imp.now().UTC().Format("2006-01-02")
	}
	m := domain.Member{
		ID:                 imp.rowID(row, email),
		CorporateEmail:     email,
		FullName:           name,
		HireDate:           hireDate,
		Category:           category,
		Location:           mapped(row, mapping, "location"),
		AvailabilityStatus: domain.AvailabilityAvailable,
	}
	if err := imp.members.Add(ctx, m); err != nil {
		return "", err
	}
	if err := imp.profiles.Add(ctx, usecase.EmptyProfileFor(m.ID)); err != nil {
		return "", err
	}
	return "created", nil
}

func (imp *SmartImporter) commitSkill(ctx context.Context, row Row, mapping Mapping) (string, error) {
	name := mapped(row, mapping, "name")
	if name == "" {
		return "missing skill name", nil
	}
	existing, found, err := imp.skills.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	if found {
		if v := mapped(row, mapping, "purpose"); v != "" {
			return "updated", imp.skills.Update(ctx, existing.ID, map[string]any{"purpose": v})
		}
		return "updated", nil
	}
	sk := domain.Skill{
		ID:      imp.rowID(row, name),
		Name:    name,
		Purpose: mapped(row, mapping, "purpose"),
	}
	if err := imp.skills.Add(ctx, sk); err != nil {
		return "", err
	}
	return "created", nil
}

func (imp *SmartImporter) commitClient(ctx context.Context, row Row, mapping Mapping) (string, error) {
	name := mapped(row, mapping, "name")
	if name == "" {
		return "missing client name", nil
	}
	existing, found, err := imp.clients.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	now := imp.now().UTC()
	if found {
		patch := map[string]any{"updatedAt": now.Format(time.RFC3339Nano)}
		if v := mapped(row, mapping, "industry"); v != "" {
			patch["industry"] = v
		}
		if v := mapped(row, mapping, "location"); v != "" {
			patch["location"] = v
		}
		return "updated", imp.clients.Update(ctx, existing.ID, patch)
	}
	c := domain.Client{
		ID:        imp.rowID(row, name),
		Name:      name,
		Industry:  mapped(row, mapping, "industry"),
		Location:  mapped(row, mapping, "location"),
		Status:    domain.ClientActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := imp.clients.Add(ctx, c); err != nil {
		return "", err
	}
	return "created", nil
}

// rowID keeps an id the row already carries; otherwise it synthesizes one
// from the semantic key plus a timestamp suffix to keep collisions unlikely.
func (imp *SmartImporter) rowID(row Row, semantic string) string {
	if id := row.Get("id"); id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", slugify(semantic), imp.now().UnixMilli())
}

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	if at := strings.IndexByte(s, '@'); at >= 0 {
		s = s[:at]
	}
	s = nonSlugRe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

func mapped(row Row, mapping Mapping, field string) string {
	col, ok := mapping.Fields[field]
	if !ok {
		return ""
	}
	return row.Get(col)
}
