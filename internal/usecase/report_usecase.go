package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"
)

const unknownLabel = "Unknown"

// ClientHistoryMatch is one member matched by a client-name search, with the
// rendered descriptors of every matching engagement.
type ClientHistoryMatch struct {
	Member      domain.Member `json:"member"`
	Engagements []string      `json:"engagements"`
}

type SkillHolder struct {
	MemberID    string `json:"memberId"`
	FullName    string `json:"fullName"`
	Proficiency string `json:"proficiency"`
	Label       string `json:"label"`
}

// CategorySkillGroup aggregates one skill across all members of a techie
// category.
type CategorySkillGroup struct {
	SkillID            string        `json:"skillId"`
	SkillName          string        `json:"skillName"`
	Purpose            string        `json:"purpose"`
	MemberCount        int           `json:"memberCount"`
	AverageProficiency float64       `json:"averageProficiency"`
	Holders            []SkillHolder `json:"holders"`
}

type SkillAvailabilityRow struct {
	SkillID       string `json:"skillId"`
	SkillName     string `json:"skillName"`
	Total         int    `json:"total"`
	Available     int    `json:"available"`
	AvailableSoon int    `json:"availableSoon"`
	Assigned      int    `json:"assigned"`
}

type ReportUsecase interface {
	MembersByClientHistory(ctx context.Context, clientQuery string) ([]ClientHistoryMatch, error)
	SkillsByCategory(ctx context.Context, category string) ([]CategorySkillGroup, error)
	SkillAvailability(ctx context.Context) ([]SkillAvailabilityRow, error)
}

// Reports is the derived-query layer: every call re-scans and re-joins the
// repositories, there are no materialized views. Empty results are empty
// slices, never errors.
type Reports struct {
	members      repository.MemberRepository
	profiles     repository.MemberProfileRepository
	memberSkills repository.MemberSkillRepository
	skills       repository.SkillRepository
	scales       repository.ScaleRepository
}

func NewReportUsecase(
	members repository.MemberRepository,
	profiles repository.MemberProfileRepository,
	memberSkills repository.MemberSkillRepository,
	skills repository.SkillRepository,
	scales repository.ScaleRepository,
) *Reports {
	return &Reports{members: members, profiles: profiles, memberSkills: memberSkills, skills: skills, scales: scales}
}

// MembersByClientHistory returns every member whose current client or
// profile assignment history matches the query substring, case-insensitive.
// Members matched both ways are deduplicated by id.
func (u *Reports) MembersByClientHistory(ctx context.Context, clientQuery string) ([]ClientHistoryMatch, error) {
	q := strings.ToLower(strings.TrimSpace(clientQuery))
	if q == "" {
		return []ClientHistoryMatch{}, nil
	}

	members, err := u.members.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	profiles, err := u.profiles.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	profileByMember := make(map[string]domain.MemberProfile, len(profiles))
	for _, p := range profiles {
		profileByMember[p.MemberID] = p
	}

	out := make([]ClientHistoryMatch, 0)
	for _, m := range members {
		engagements := make([]string, 0)

		if m.CurrentAssignedClient != "" && strings.Contains(strings.ToLower(m.CurrentAssignedClient), q) {
			engagements = append(engagements, fmt.Sprintf("%s (Current)", m.CurrentAssignedClient))
		}

		if p, ok := profileByMember[m.ID]; ok {
			for _, a := range p.Assignments {
				if !strings.Contains(strings.ToLower(a.ClientName), q) {
					continue
				}
				if a.IsCurrent {
					desc := fmt.Sprintf("%s (Current)", a.ClientName)
					if !containsString(engagements, desc) {
						engagements = append(engagements, desc)
					}
					continue
				}
				end := a.EndDate
				if end == "" {
					end = "Present"
				}
				engagements = append(engagements, fmt.Sprintf("%s (%s - %s)", a.ClientName, a.StartDate, end))
			}
		}

		if len(engagements) > 0 {
			out = append(out, ClientHistoryMatch{Member: m, Engagements: engagements})
		}
	}
	return out, nil
}

// SkillsByCategory unions the skills of all members in the category, grouped
// by skill and sorted by how many members hold each one. The average is the
// mean of the parseable proficiency values only: unparseable values are
// excluded from the denominator rather than counted as zero.
func (u *Reports) SkillsByCategory(ctx context.Context, category string) ([]CategorySkillGroup, error) {
	members, err := u.members.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	inCategory := make(map[string]domain.Member)
	for _, m := range members {
		if m.Category == category {
			inCategory[m.ID] = m
		}
	}
	if len(inCategory) == 0 {
		return []CategorySkillGroup{}, nil
	}

	memberSkills, err := u.memberSkills.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	skillByID, err := u.skillIndex(ctx)
	if err != nil {
		return nil, err
	}
	scaleByID, err := u.scaleIndex(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*CategorySkillGroup)
	for _, ms := range memberSkills {
		m, ok := inCategory[ms.MemberID]
		if !ok {
			continue
		}

		g, ok := groups[ms.SkillID]
		if !ok {
			name, purpose := unknownLabel, ""
			if sk, found := skillByID[ms.SkillID]; found {
				name, purpose = sk.Name, sk.Purpose
			}
			g = &CategorySkillGroup{SkillID: ms.SkillID, SkillName: name, Purpose: purpose}
			groups[ms.SkillID] = g
		}

		label := ms.ProficiencyValue
		if sc, found := scaleByID[ms.ScaleID]; found {
			label = sc.LabelFor(ms.ProficiencyValue)
		}
		g.Holders = append(g.Holders, SkillHolder{
			MemberID:    m.ID,
			FullName:    m.FullName,
			Proficiency: ms.ProficiencyValue,
			Label:       label,
		})
		g.MemberCount++
	}

	out := make([]CategorySkillGroup, 0, len(groups))
	for _, g := range groups {
		g.AverageProficiency = averageProficiency(g.Holders)
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MemberCount != out[j].MemberCount {
			return out[i].MemberCount > out[j].MemberCount
		}
		return out[i].SkillName < out[j].SkillName
	})
	return out, nil
}

// SkillAvailability breaks each skill's holders down by availability status.
func (u *Reports) SkillAvailability(ctx context.Context) ([]SkillAvailabilityRow, error) {
	members, err := u.members.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	memberByID := make(map[string]domain.Member, len(members))
	for _, m := range members {
		memberByID[m.ID] = m
	}

	memberSkills, err := u.memberSkills.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	skillByID, err := u.skillIndex(ctx)
	if err != nil {
		return nil, err
	}

	rows := make(map[string]*SkillAvailabilityRow)
	for _, ms := range memberSkills {
		m, ok := memberByID[ms.MemberID]
		if !ok {
			continue
		}
		row, ok := rows[ms.SkillID]
		if !ok {
			name := unknownLabel
			if sk, found := skillByID[ms.SkillID]; found {
				name = sk.Name
			}
			row = &SkillAvailabilityRow{SkillID: ms.SkillID, SkillName: name}
			rows[ms.SkillID] = row
		}
		row.Total++
		switch m.AvailabilityStatus {
		case domain.AvailabilityAvailable:
			row.Available++
		case domain.AvailabilityAvailableSoon:
			row.AvailableSoon++
		case domain.AvailabilityAssigned:
			row.Assigned++
		}
	}

	out := make([]SkillAvailabilityRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].SkillName < out[j].SkillName
	})
	return out, nil
}

func (u *Reports) skillIndex(ctx context.Context) (map[string]domain.Skill, error) {
	skills, err := u.skills.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	byID := make(map[string]domain.Skill, len(skills))
	for _, sk := range skills {
		byID[sk.ID] = sk
	}
	return byID, nil
}

func (u *Reports) scaleIndex(ctx context.Context) (map[string]domain.Scale, error) {
	scales, err := u.scales.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	byID := make(map[string]domain.Scale, len(scales))
	for _, sc := range scales {
		byID[sc.ID] = sc
	}
	return byID, nil
}

func averageProficiency(holders []SkillHolder) float64 {
	sum, n := 0, 0
	for _, h := range holders {
		v, err := strconv.Atoi(strings.TrimSpace(h.Proficiency))
		if err != nil {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
