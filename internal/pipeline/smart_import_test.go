package pipeline

import (
	"context"
	"testing"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"
	"skills-radar/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMapper struct {
	mapping Mapping
	samples [][]Row
}

func (m *stubMapper) InferMapping(_ context.Context, sample []Row) (Mapping, error) {
	m.samples = append(m.samples, sample)
	return m.mapping, nil
}

type smartFixture struct {
	imp     *SmartImporter
	mapper  *stubMapper
	members repository.MemberRepository
	skills  repository.SkillRepository
	clients repository.ClientRepository
}

func newSmartFixture(mapping Mapping) smartFixture {
	s := store.NewMemory()
	f := smartFixture{
		mapper:  &stubMapper{mapping: mapping},
		members: repository.NewStoreMemberRepository(s),
		skills:  repository.NewStoreSkillRepository(s),
		clients: repository.NewStoreClientRepository(s),
	}
	f.imp = NewSmartImporter(f.members, repository.NewStoreMemberProfileRepository(s), f.skills, f.clients, f.mapper)
	return f
}

func TestSmartImporter_PreviewSamplesAtMostFiveRows(t *testing.T) {
	f := newSmartFixture(Mapping{Entity: MappingEntitySkill, Fields: map[string]string{"name": "skill"}})

	rows := make([]Row, 0, 8)
	for i := 0; i < 8; i++ {
		rows = append(rows, Row{"skill": "Go"})
	}

	preview, err := f.imp.PreviewRows(context.Background(), rows)
	require.NoError(t, err)
	assert.Len(t, preview.Rows, 8, "preview returns every row")
	require.Len(t, f.mapper.samples, 1)
	assert.Len(t, f.mapper.samples[0], 5, "the mapper only sees a sample")
	assert.Equal(t, MappingEntitySkill, preview.Mapping.Entity)
}

func TestSmartImporter_CommitMembersSkipsExcludedRows(t *testing.T) {
	f := newSmartFixture(Mapping{})
	ctx := context.Background()

	mapping := Mapping{
		Entity: MappingEntityMember,
		Fields: map[string]string{"corporateEmail": "Email", "fullName": "Name"},
	}
	rows := []Row{
		{"Email": "a@example.com", "Name": "A"},
		{"Email": "b@example.com", "Name": "B"},
		{"Email": "c@example.com", "Name": "C"},
	}

	res, errs, err := f.imp.Commit(ctx, rows, mapping, map[int]bool{1: true})
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Skipped)

	_, ok, err := f.members.GetByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	assert.False(t, ok, "excluded rows are never written")
}

func TestSmartImporter_CommitUpsertsAndReportsBadRows(t *testing.T) {
	f := newSmartFixture(Mapping{})
	ctx := context.Background()

	require.NoError(t, f.skills.Add(ctx, domain.Skill{ID: "s1", Name: "Go"}))

	mapping := Mapping{
		Entity: MappingEntitySkill,
		Fields: map[string]string{"name": "skill", "purpose": "why"},
	}
	rows := []Row{
		{"skill": "Go", "why": "Services"},
		{"skill": "", "why": "Nothing"},
		{"skill": "Rust"},
	}

	res, errs, err := f.imp.Commit(ctx, rows, mapping, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "row 2")

	updated, _, err := f.skills.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Services", updated.Purpose)
}

func TestSmartImporter_CommitClientsNeverDeletes(t *testing.T) {
	f := newSmartFixture(Mapping{})
	ctx := context.Background()

	require.NoError(t, f.clients.Add(ctx, domain.Client{ID: "c1", Name: "Acme", Status: domain.ClientActive}))

	mapping := Mapping{
		Entity: MappingEntityClient,
		Fields: map[string]string{"name": "client", "industry": "industry"},
	}
	rows := []Row{{"client": "Globex", "industry": "Retail"}}

	res, errs, err := f.imp.Commit(ctx, rows, mapping, nil)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, 1, res.Created)

	all, err := f.clients.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "pre-existing clients stay")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "jane-doe", slugify("jane.doe@example.com"))
	assert.Equal(t, "acme-bank", slugify("Acme Bank!"))
}
