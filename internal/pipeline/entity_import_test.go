package pipeline

import (
	"context"
	"testing"

	"skills-radar/internal/repository"
	"skills-radar/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntityImportFixture() (*EntityImporter, repository.SkillRepository, repository.KnowledgeAreaRepository) {
	s := store.NewMemory()
	areas := repository.NewStoreKnowledgeAreaRepository(s)
	cats := repository.NewStoreSkillCategoryRepository(s)
	skills := repository.NewStoreSkillRepository(s)
	return NewEntityImporter(areas, cats, skills), skills, areas
}

func TestEntityImporter_ResolvesReferencesAcrossSheets(t *testing.T) {
	imp, skills, areas := newEntityImportFixture()
	ctx := context.Background()

	sheets := []Sheet{
		{Name: SheetKnowledgeAreas, Rows: []Row{{"Name": "Backend", "Description": "Server side"}}},
		{Name: SheetSkillCategories, Rows: []Row{{"Name": "Technical", "Criterion": "Hard skills"}}},
		{Name: SheetSkills, Rows: []Row{
			{"Name": "Go", "Purpose": "Services", "Knowledge Area": "Backend", "Skill Category": "Technical"},
		}},
	}

	res, errs, err := imp.Run(ctx, sheets)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, 1, res.AreasUpserted)
	assert.Equal(t, 1, res.CategoriesUpserted)
	assert.Equal(t, 1, res.SkillsUpserted)

	sk, ok, err := skills.GetByName(ctx, "Go")
	require.NoError(t, err)
	require.True(t, ok)

	area, ok, err := areas.GetByName(ctx, "Backend")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, area.ID, sk.KnowledgeAreaID)
}

func TestEntityImporter_UnresolvableSkillRefIsPartialSuccess(t *testing.T) {
	imp, skills, _ := newEntityImportFixture()
	ctx := context.Background()

	sheets := []Sheet{
		{Name: SheetKnowledgeAreas, Rows: []Row{{"Name": "Backend"}}},
		{Name: SheetSkillCategories, Rows: []Row{{"Name": "Technical"}}},
		{Name: SheetSkills, Rows: []Row{
			{"Name": "Go", "Knowledge Area": "Backend", "Skill Category": "Technical"},
			{"Name": "Figma", "Knowledge Area": "Design", "Skill Category": "Technical"},
		}},
	}

	res, errs, err := imp.Run(ctx, sheets)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SkillsUpserted)
	assert.Equal(t, 1, res.SkillRowsSkipped)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `unknown knowledge area "Design"`)

	_, ok, err := skills.GetByName(ctx, "Go")
	require.NoError(t, err)
	assert.True(t, ok, "good rows still commit")
}

func TestEntityImporter_MissingSheetsAreFine(t *testing.T) {
	imp, _, areas := newEntityImportFixture()
	ctx := context.Background()

	sheets := []Sheet{
		{Name: "knowledge areas", Rows: []Row{{"Name": "Data"}}},
	}

	res, errs, err := imp.Run(ctx, sheets)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, 1, res.AreasUpserted)

	_, ok, err := areas.GetByName(ctx, "Data")
	require.NoError(t, err)
	assert.True(t, ok, "sheet lookup is case-insensitive")
}

func TestEntityImporter_UpsertByNameDoesNotDuplicate(t *testing.T) {
	imp, _, areas := newEntityImportFixture()
	ctx := context.Background()

	sheets := []Sheet{
		{Name: SheetKnowledgeAreas, Rows: []Row{{"Name": "Backend", "Description": "v1"}}},
	}
	_, _, err := imp.Run(ctx, sheets)
	require.NoError(t, err)

	sheets[0].Rows[0]["Description"] = "v2"
	_, _, err = imp.Run(ctx, sheets)
	require.NoError(t, err)

	all, err := areas.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "v2", all[0].Description)
}
