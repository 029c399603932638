package pipeline

import (
	"context"
	"testing"

	"skills-radar/internal/repository"
	"skills-radar/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bulkFixture struct {
	store        store.Store
	ingestor     *BulkIngestor
	members      repository.MemberRepository
	memberSkills repository.MemberSkillRepository
	skills       repository.SkillRepository
	scales       repository.ScaleRepository
	profiles     repository.MemberProfileRepository
}

func newBulkFixture() bulkFixture {
	s := store.NewMemory()
	f := bulkFixture{
		store:        s,
		members:      repository.NewStoreMemberRepository(s),
		profiles:     repository.NewStoreMemberProfileRepository(s),
		memberSkills: repository.NewStoreMemberSkillRepository(s),
		skills:       repository.NewStoreSkillRepository(s),
		scales:       repository.NewStoreScaleRepository(s),
	}
	f.ingestor = NewBulkIngestor(
		s,
		f.members, f.profiles, f.memberSkills,
		f.skills, f.scales,
		repository.NewStoreKnowledgeAreaRepository(s),
		repository.NewStoreSkillCategoryRepository(s),
		nil,
	)
	return f
}

func TestBulkIngestor_CreatesMembersSkillsAndDefaults(t *testing.T) {
	f := newBulkFixture()
	ctx := context.Background()

	rows := []BulkRow{
		{Date: "2023-04-01", Email: "jane.doe@example.com", Skill: "Go", Expertise: "Expert"},
		{Date: "2023-04-01", Email: "jane.doe@example.com", Skill: "Kubernetes", Expertise: "Know but didn't use"},
		{Date: "2023-04-02", Email: "bob@example.com", Skill: "Go", Expertise: "Know well"},
	}

	sum, err := f.ingestor.Run(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.MembersCreated)
	assert.Equal(t, 2, sum.SkillsCreated)
	assert.Equal(t, 3, sum.MemberSkillsWritten)
	assert.False(t, sum.SkippedAlreadyInitialized)

	jane, ok, err := f.members.GetByEmail(ctx, "jane.doe@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", jane.FullName)
	assert.Equal(t, "2023-04-01", jane.HireDate)

	// Every member gets a profile, bulk-ingested ones included.
	_, ok, err = f.profiles.GetByMemberID(ctx, jane.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	scale, ok, err := f.scales.GetByName(ctx, "Expertise")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, scale.Values, 5)

	janeSkills, err := f.memberSkills.GetByMemberID(ctx, jane.ID)
	require.NoError(t, err)
	require.Len(t, janeSkills, 2)
	for _, ms := range janeSkills {
		assert.Equal(t, scale.ID, ms.ScaleID)
	}
}

func TestBulkIngestor_LaterRowWinsForSamePair(t *testing.T) {
	f := newBulkFixture()
	ctx := context.Background()

	rows := []BulkRow{
		{Email: "jane@example.com", Skill: "Go", Expertise: "Don't know"},
		{Email: "jane@example.com", Skill: "Go", Expertise: "Expert"},
	}

	_, err := f.ingestor.Run(ctx, rows)
	require.NoError(t, err)

	jane, _, err := f.members.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	skills, err := f.memberSkills.GetByMemberID(ctx, jane.ID)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "5", skills[0].ProficiencyValue)
}

func TestBulkIngestor_SkipsPromptRowsWithoutLevel(t *testing.T) {
	f := newBulkFixture()
	ctx := context.Background()

	rows := []BulkRow{
		{Email: "jane@example.com", Skill: "Please share any other skills", Expertise: "I also paint"},
		{Email: "jane@example.com", Skill: "Other comments", Expertise: "Expert"},
		{Email: "", Skill: "Go", Expertise: "Expert"},
	}

	sum, err := f.ingestor.Run(ctx, rows)
	require.NoError(t, err)
	// The first row is an open prompt with no level, the third has no email.
	// The second looks like a prompt but carries a named level, so it stays.
	assert.Equal(t, 2, sum.RowsSkipped)
	assert.Equal(t, 1, sum.MemberSkillsWritten)
}

func TestBulkIngestor_SecondRunIsNoop(t *testing.T) {
	f := newBulkFixture()
	ctx := context.Background()

	rows := []BulkRow{{Email: "jane@example.com", Skill: "Go", Expertise: "Expert"}}

	_, err := f.ingestor.Run(ctx, rows)
	require.NoError(t, err)

	sum, err := f.ingestor.Run(ctx, rows)
	require.NoError(t, err)
	assert.True(t, sum.SkippedAlreadyInitialized)
	assert.Equal(t, 0, sum.MemberSkillsWritten)

	all, err := f.memberSkills.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFullNameFromEmail(t *testing.T) {
	assert.Equal(t, "Jane Doe", FullNameFromEmail("jane.doe@example.com"))
	assert.Equal(t, "Bob", FullNameFromEmail("bob@example.com"))
	assert.Equal(t, "@example.com", FullNameFromEmail("@example.com"))
}

func TestParseBulkRows(t *testing.T) {
	rows, err := ParseBulkRows([]byte(`[{"Date":"2023-04-01","Email":"a@b.c","Skill":"Go","Expertise Full Name":"Expert"}]`))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Expert", rows[0].Expertise)

	_, err = ParseBulkRows([]byte(`{"not":"an array"}`))
	assert.ErrorIs(t, err, ErrUnparseableFile)
}
