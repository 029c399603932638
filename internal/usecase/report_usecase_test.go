package usecase

import (
	"context"
	"testing"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"
	"skills-radar/internal/store"
)

type reportFixture struct {
	uc           *Reports
	members      repository.MemberRepository
	profiles     repository.MemberProfileRepository
	memberSkills repository.MemberSkillRepository
	skills       repository.SkillRepository
	scales       repository.ScaleRepository
}

func newReportFixture() reportFixture {
	s := store.NewMemory()
	f := reportFixture{
		members:      repository.NewStoreMemberRepository(s),
		profiles:     repository.NewStoreMemberProfileRepository(s),
		memberSkills: repository.NewStoreMemberSkillRepository(s),
		skills:       repository.NewStoreSkillRepository(s),
		scales:       repository.NewStoreScaleRepository(s),
	}
	f.uc = NewReportUsecase(f.members, f.profiles, f.memberSkills, f.skills, f.scales)
	return f
}

func TestMembersByClientHistory_DescriptorsAndDedup(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	_ = f.members.Add(ctx, domain.Member{ID: "m1", FullName: "Ana", CurrentAssignedClient: "Acme Bank"})
	_ = f.profiles.Add(ctx, domain.MemberProfile{
		ID:       "p1",
		MemberID: "m1",
		Assignments: []domain.ProfileAssignment{
			{ClientName: "Acme Bank", StartDate: "2025-01-01", IsCurrent: true},
			{ClientName: "Acme Bank", StartDate: "2023-01-01", EndDate: "2024-01-01"},
			{ClientName: "Acme Insurance", StartDate: "2022-01-01"},
		},
	})
	_ = f.members.Add(ctx, domain.Member{ID: "m2", FullName: "Ben"})

	matches, err := f.uc.MembersByClientHistory(ctx, "acme bank")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	got := matches[0].Engagements
	want := []string{
		"Acme Bank (Current)",
		"Acme Bank (2023-01-01 - 2024-01-01)",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d engagements, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("engagement %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestMembersByClientHistory_OpenEndedReadsPresent(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	_ = f.members.Add(ctx, domain.Member{ID: "m1", FullName: "Ana"})
	_ = f.profiles.Add(ctx, domain.MemberProfile{
		ID:       "p1",
		MemberID: "m1",
		Assignments: []domain.ProfileAssignment{
			{ClientName: "Globex", StartDate: "2024-01-01"},
		},
	})

	matches, err := f.uc.MembersByClientHistory(ctx, "globex")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(matches) != 1 || matches[0].Engagements[0] != "Globex (2024-01-01 - Present)" {
		t.Fatalf("unexpected matches: %+v", matches)
	}
}

func TestMembersByClientHistory_EmptyQuery(t *testing.T) {
	f := newReportFixture()

	matches, err := f.uc.MembersByClientHistory(context.Background(), "   ")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected empty result for blank query, got %d", len(matches))
	}
}

func TestSkillsByCategory_AverageSkipsUnparseableValues(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	_ = f.members.Add(ctx, domain.Member{ID: "m1", FullName: "Ana", Category: domain.CategorySolver})
	_ = f.members.Add(ctx, domain.Member{ID: "m2", FullName: "Ben", Category: domain.CategorySolver})
	_ = f.members.Add(ctx, domain.Member{ID: "m3", FullName: "Cid", Category: domain.CategorySolver})
	_ = f.skills.Add(ctx, domain.Skill{ID: "s1", Name: "Go"})
	_ = f.scales.Add(ctx, domain.Scale{ID: "sc1", Name: "Expertise", Values: []string{"Novice", "Basic", "Good", "Strong", "Expert"}})

	_ = f.memberSkills.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "s1", ScaleID: "sc1", ProficiencyValue: "4"})
	_ = f.memberSkills.Add(ctx, domain.MemberSkill{MemberID: "m2", SkillID: "s1", ScaleID: "sc1", ProficiencyValue: "3"})
	_ = f.memberSkills.Add(ctx, domain.MemberSkill{MemberID: "m3", SkillID: "s1", ScaleID: "sc1", ProficiencyValue: "expert"})

	groups, err := f.uc.SkillsByCategory(ctx, domain.CategorySolver)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.MemberCount != 3 {
		t.Fatalf("expected 3 holders, got %d", g.MemberCount)
	}
	// "expert" is not a number: the average is (4+3)/2, not (4+3+0)/3.
	if g.AverageProficiency != 3.5 {
		t.Fatalf("expected average 3.5, got %v", g.AverageProficiency)
	}

	for _, h := range g.Holders {
		if h.Proficiency == "4" && h.Label != "Strong" {
			t.Fatalf("expected label Strong for level 4, got %q", h.Label)
		}
		if h.Proficiency == "expert" && h.Label != "expert" {
			t.Fatalf("expected raw fallback label, got %q", h.Label)
		}
	}
}

func TestSkillsByCategory_SortsByHolderCount(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	_ = f.members.Add(ctx, domain.Member{ID: "m1", Category: domain.CategoryBuilder})
	_ = f.members.Add(ctx, domain.Member{ID: "m2", Category: domain.CategoryBuilder})
	_ = f.skills.Add(ctx, domain.Skill{ID: "s1", Name: "Go"})
	_ = f.skills.Add(ctx, domain.Skill{ID: "s2", Name: "Rust"})

	_ = f.memberSkills.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "s1", ProficiencyValue: "3"})
	_ = f.memberSkills.Add(ctx, domain.MemberSkill{MemberID: "m2", SkillID: "s1", ProficiencyValue: "2"})
	_ = f.memberSkills.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "s2", ProficiencyValue: "5"})

	groups, err := f.uc.SkillsByCategory(ctx, domain.CategoryBuilder)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].SkillName != "Go" || groups[1].SkillName != "Rust" {
		t.Fatalf("unexpected order: %q, %q", groups[0].SkillName, groups[1].SkillName)
	}
}

func TestSkillAvailability_CountsByStatus(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	_ = f.members.Add(ctx, domain.Member{ID: "m1", AvailabilityStatus: domain.AvailabilityAvailable})
	_ = f.members.Add(ctx, domain.Member{ID: "m2", AvailabilityStatus: domain.AvailabilityAssigned})
	_ = f.members.Add(ctx, domain.Member{ID: "m3", AvailabilityStatus: domain.AvailabilityAvailableSoon})
	_ = f.skills.Add(ctx, domain.Skill{ID: "s1", Name: "Go"})

	for _, m := range []string{"m1", "m2", "m3"} {
		_ = f.memberSkills.Add(ctx, domain.MemberSkill{MemberID: m, SkillID: "s1", ProficiencyValue: "3"})
	}

	rows, err := f.uc.SkillAvailability(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.Total != 3 || r.Available != 1 || r.Assigned != 1 || r.AvailableSoon != 1 {
		t.Fatalf("unexpected counts: %+v", r)
	}
}

func TestSkillsByCategory_DanglingSkillReferenceReadsUnknown(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	_ = f.members.Add(ctx, domain.Member{ID: "m1", Category: domain.CategoryStarter})
	_ = f.memberSkills.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "ghost", ProficiencyValue: "2"})

	groups, err := f.uc.SkillsByCategory(ctx, domain.CategoryStarter)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(groups) != 1 || groups[0].SkillName != "Unknown" {
		t.Fatalf("expected Unknown skill name, got %+v", groups)
	}
}
