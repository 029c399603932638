package repository

import (
	"context"
	"testing"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

func TestMemberSkillRepository_AddOverwritesByCompositeKey(t *testing.T) {
	repo := NewStoreMemberSkillRepository(store.NewMemory())
	ctx := context.Background()

	if err := repo.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "s1", ScaleID: "sc1", ProficiencyValue: "2"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "s1", ScaleID: "sc1", ProficiencyValue: "5"}); err != nil {
		t.Fatalf("add again: %v", err)
	}
	if err := repo.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "s2", ScaleID: "sc1", ProficiencyValue: "3"}); err != nil {
		t.Fatalf("add other skill: %v", err)
	}

	items, err := repo.GetByMemberID(ctx, "m1")
	if err != nil {
		t.Fatalf("get by member: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
	for _, ms := range items {
		if ms.SkillID == "s1" && ms.ProficiencyValue != "5" {
			t.Fatalf("expected overwrite to 5, got %q", ms.ProficiencyValue)
		}
	}
}

func TestMemberSkillRepository_DeleteByMemberID(t *testing.T) {
	repo := NewStoreMemberSkillRepository(store.NewMemory())
	ctx := context.Background()

	_ = repo.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "s1"})
	_ = repo.Add(ctx, domain.MemberSkill{MemberID: "m1", SkillID: "s2"})
	_ = repo.Add(ctx, domain.MemberSkill{MemberID: "m2", SkillID: "s1"})

	if err := repo.DeleteByMemberID(ctx, "m1"); err != nil {
		t.Fatalf("delete by member: %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 || all[0].MemberID != "m2" {
		t.Fatalf("expected only m2 rows to remain, got %+v", all)
	}
}

func TestMemberRepository_PartialUpdatePreservesOtherFields(t *testing.T) {
	repo := NewStoreMemberRepository(store.NewMemory())
	ctx := context.Background()

	m := domain.Member{
		ID:                 "m1",
		CorporateEmail:     "ada.lovelace@example.com",
		FullName:           "Ada Lovelace",
		HireDate:           "2021-03-01",
		Category:           domain.CategorySolver,
		Location:           "London",
		AvailabilityStatus: domain.AvailabilityAvailable,
	}
	if err := repo.Add(ctx, m); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := repo.Update(ctx, "m1", map[string]any{"location": "Madrid"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, ok, err := repo.GetByID(ctx, "m1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Location != "Madrid" {
		t.Fatalf("expected updated location, got %q", got.Location)
	}
	if got.FullName != "Ada Lovelace" || got.Category != domain.CategorySolver {
		t.Fatalf("unrelated fields changed: %+v", got)
	}
}

func TestMemberRepository_GetByEmailCaseInsensitive(t *testing.T) {
	repo := NewStoreMemberRepository(store.NewMemory())
	ctx := context.Background()

	_ = repo.Add(ctx, domain.Member{ID: "m1", CorporateEmail: "Ada.Lovelace@Example.com"})

	_, ok, err := repo.GetByEmail(ctx, "ada.lovelace@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if !ok {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestMemberRepository_UpdateUnknownIDIsNoop(t *testing.T) {
	repo := NewStoreMemberRepository(store.NewMemory())
	ctx := context.Background()

	if err := repo.Update(ctx, "missing", map[string]any{"location": "Oslo"}); err != nil {
		t.Fatalf("expected no error for unknown id, got %v", err)
	}
}
