package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skills-radar/internal/repository"
)

const snapshotCacheKey = "assistant:team-context"

// How many members the context string samples. The full roster would blow
// the model's token budget on larger teams.
const defaultMaxMembers = 25

type teamSnapshot struct {
	Context string    `json:"context"`
	BuiltAt time.Time `json:"builtAt"`
}

// SnapshotCache owns the TTL-bounded aggregated team context the assistant
// prompts are grounded in. It is an explicit, injectable object: mutating
// flows call Invalidate, prompt builders call Get.
type SnapshotCache struct {
	cache Cache
	ttl   time.Duration

	members      repository.MemberRepository
	memberSkills repository.MemberSkillRepository
	skills       repository.SkillRepository

	maxMembers int
}

func NewSnapshotCache(
	c Cache,
	ttl time.Duration,
	members repository.MemberRepository,
	memberSkills repository.MemberSkillRepository,
	skills repository.SkillRepository,
) *SnapshotCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &SnapshotCache{
		cache:        c,
		ttl:          ttl,
		members:      members,
		memberSkills: memberSkills,
		skills:       skills,
		maxMembers:   defaultMaxMembers,
	}
}

// Get returns the cached context string, rebuilding it on a miss.
func (s *SnapshotCache) Get(ctx context.Context) (string, error) {
	var snap teamSnapshot
	hit, err := s.cache.GetJSON(ctx, snapshotCacheKey, &snap)
	if err == nil && hit && snap.Context != "" {
		return snap.Context, nil
	}
	return s.Refresh(ctx)
}

// Refresh rebuilds the snapshot from the repositories and stores it.
func (s *SnapshotCache) Refresh(ctx context.Context) (string, error) {
	text, err := s.build(ctx)
	if err != nil {
		return "", err
	}
	snap := teamSnapshot{Context: text, BuiltAt: time.Now().UTC()}
	// A failed cache write is not fatal; the caller still gets the context.
	_ = s.cache.SetJSON(ctx, snapshotCacheKey, snap, s.ttl)
	return text, nil
}

func (s *SnapshotCache) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, snapshotCacheKey)
}

func (s *SnapshotCache) build(ctx context.Context) (string, error) {
	members, err := s.members.GetAll(ctx)
	if err != nil {
		return "", err
	}
	memberSkills, err := s.memberSkills.GetAll(ctx)
	if err != nil {
		return "", err
	}
	skills, err := s.skills.GetAll(ctx)
	if err != nil {
		return "", err
	}

	skillName := make(map[string]string, len(skills))
	for _, sk := range skills {
		skillName[sk.ID] = sk.Name
	}
	skillsByMember := make(map[string][]string)
	for _, ms := range memberSkills {
		name, ok := skillName[ms.SkillID]
		if !ok {
			continue
		}
		skillsByMember[ms.MemberID] = append(skillsByMember[ms.MemberID],
			fmt.Sprintf("%s (level %s)", name, ms.ProficiencyValue))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Team overview: %d members, %d distinct skills.\n", len(members), len(skills))
	sampled := members
	if len(sampled) > s.maxMembers {
		sampled = sampled[:s.maxMembers]
		fmt.Fprintf(&b, "Showing the first %d members.\n", s.maxMembers)
	}
	for _, m := range sampled {
		fmt.Fprintf(&b, "- %s | %s | %s | %s", m.FullName, m.Category, m.Location, m.AvailabilityStatus)
		if m.CurrentAssignedClient != "" {
			fmt.Fprintf(&b, " | client: %s", m.CurrentAssignedClient)
		}
		if list := skillsByMember[m.ID]; len(list) > 0 {
			if len(list) > 8 {
				list = list[:8]
			}
			fmt.Fprintf(&b, " | skills: %s", strings.Join(list, ", "))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
