package assistant

import (
	"context"
	"strings"
	"testing"
	"time"

	"skills-radar/internal/domain"
	"skills-radar/internal/infrastructure/cache"
	"skills-radar/internal/repository"
	"skills-radar/internal/store"
	"skills-radar/internal/usecase"
)

type snapshotFixture struct {
	snap    *SnapshotCache
	members repository.MemberRepository
}

func newSnapshotFixture() snapshotFixture {
	s := store.NewMemory()
	members := repository.NewStoreMemberRepository(s)
	memberSkills := repository.NewStoreMemberSkillRepository(s)
	skills := repository.NewStoreSkillRepository(s)
	return snapshotFixture{
		snap:    NewSnapshotCache(cache.NewMemory(), time.Minute, members, memberSkills, skills),
		members: members,
	}
}

func TestSnapshotCacheServesCachedContext(t *testing.T) {
	f := newSnapshotFixture()
	ctx := context.Background()

	if err := f.members.Add(ctx, domain.Member{ID: "m1", FullName: "Jane Doe", CorporateEmail: "jane@example.com"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	first, err := f.snap.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(first, "Jane Doe") {
		t.Fatalf("context missing member: %q", first)
	}

	// New data must not show up until the cached snapshot is dropped.
	if err := f.members.Add(ctx, domain.Member{ID: "m2", FullName: "Bob Roe", CorporateEmail: "bob@example.com"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	second, err := f.snap.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if strings.Contains(second, "Bob Roe") {
		t.Fatal("cached snapshot was rebuilt too early")
	}

	if err := f.snap.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	third, err := f.snap.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(third, "Bob Roe") {
		t.Fatalf("invalidated snapshot missing new member: %q", third)
	}
}

func TestSnapshotCacheSeesMemberCreatedThroughUsecase(t *testing.T) {
	s := store.NewMemory()
	members := repository.NewStoreMemberRepository(s)
	profiles := repository.NewStoreMemberProfileRepository(s)
	memberSkills := repository.NewStoreMemberSkillRepository(s)
	skills := repository.NewStoreSkillRepository(s)
	snap := NewSnapshotCache(cache.NewMemory(), time.Minute, members, memberSkills, skills)
	uc := usecase.NewMemberUsecase(members, profiles, memberSkills, skills, snap)
	ctx := context.Background()

	primed, err := snap.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(primed, "0 members") {
		t.Fatalf("expected empty-team overview, got %q", primed)
	}

	// The write path invalidates the snapshot, so the next read rebuilds it.
	if _, err := uc.CreateMember(ctx, usecase.CreateMemberInput{
		CorporateEmail: "jane@example.com",
		FullName:       "Jane Doe",
		HireDate:       "2024-02-01",
		Category:       domain.CategoryBuilder,
	}); err != nil {
		t.Fatalf("create member: %v", err)
	}

	rebuilt, err := snap.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(rebuilt, "Jane Doe") {
		t.Fatalf("snapshot still stale after member write: %q", rebuilt)
	}
}

func TestSnapshotCacheSamplesLargeTeams(t *testing.T) {
	f := newSnapshotFixture()
	f.snap.maxMembers = 2
	ctx := context.Background()

	for _, m := range []domain.Member{
		{ID: "m1", FullName: "A One", CorporateEmail: "a@example.com"},
		{ID: "m2", FullName: "B Two", CorporateEmail: "b@example.com"},
		{ID: "m3", FullName: "C Three", CorporateEmail: "c@example.com"},
	} {
		if err := f.members.Add(ctx, m); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	text, err := f.snap.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !strings.Contains(text, "3 members") {
		t.Fatalf("overview should count the whole team: %q", text)
	}
	if !strings.Contains(text, "Showing the first 2 members") {
		t.Fatalf("missing sampling note: %q", text)
	}
	if strings.Contains(text, "C Three") {
		t.Fatalf("sampled context should stop at maxMembers: %q", text)
	}
}
