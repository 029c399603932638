package pipeline

import (
	"context"
	"fmt"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"

	"github.com/google/uuid"
)

// Sheet names of the entity import workbook.
const (
	SheetKnowledgeAreas  = "Knowledge Areas"
	SheetSkillCategories = "Skill Categories"
	SheetSkills          = "Skills"
)

type EntityImportResult struct {
	AreasUpserted      int `json:"areasUpserted"`
	CategoriesUpserted int `json:"categoriesUpserted"`
	SkillsUpserted     int `json:"skillsUpserted"`
	SkillRowsSkipped   int `json:"skillRowsSkipped"`
}

// EntityImporter loads the three related entity sheets in dependency order:
// knowledge areas and skill categories first, then skills, which reference
// both by name. Unresolvable skill references are row-level errors; the rest
// of the batch still commits (partial success, unlike the member import).
type EntityImporter struct {
	knowledgeAreas repository.KnowledgeAreaRepository
	categories     repository.SkillCategoryRepository
	skills         repository.SkillRepository
}

func NewEntityImporter(
	knowledgeAreas repository.KnowledgeAreaRepository,
	categories repository.SkillCategoryRepository,
	skills repository.SkillRepository,
) *EntityImporter {
	return &EntityImporter{knowledgeAreas: knowledgeAreas, categories: categories, skills: skills}
}

func (imp *EntityImporter) Run(ctx context.Context, sheets []Sheet) (EntityImportResult, []string, error) {
	var res EntityImportResult
	rowErrs := make([]string, 0)

	if rows, ok := FindSheet(sheets, SheetKnowledgeAreas); ok {
		for _, row := range rows {
			name := row.Get("Name")
			if name == "" {
				continue
			}
			existing, found, err := imp.knowledgeAreas.GetByName(ctx, name)
			if err != nil {
				return res, rowErrs, err
			}
			if found {
				err = imp.knowledgeAreas.Update(ctx, existing.ID, map[string]any{
					"name":        name,
					"description": row.Get("Description"),
				})
			} else {
				err = imp.knowledgeAreas.Add(ctx, domain.KnowledgeArea{
					ID:          uuid.NewString(),
					Name:        name,
					Description: row.Get("Description"),
				})
			}
			if err != nil {
				return res, rowErrs, err
			}
			res.AreasUpserted++
		}
	}

	if rows, ok := FindSheet(sheets, SheetSkillCategories); ok {
		for _, row := range rows {
			name := row.Get("Name")
			if name == "" {
				continue
			}
			existing, found, err := imp.categories.GetByName(ctx, name)
			if err != nil {
				return res, rowErrs, err
			}
			if found {
				err = imp.categories.Update(ctx, existing.ID, map[string]any{
					"name":      name,
					"criterion": row.Get("Criterion"),
				})
			} else {
				err = imp.categories.Add(ctx, domain.SkillCategory{
					ID:        uuid.NewString(),
					Name:      name,
					Criterion: row.Get("Criterion"),
				})
			}
			if err != nil {
				return res, rowErrs, err
			}
			res.CategoriesUpserted++
		}
	}

	if rows, ok := FindSheet(sheets, SheetSkills); ok {
		for i, row := range rows {
			n := i + 2
			name := row.Get("Name")
			if name == "" {
				continue
			}

			area, found, err := imp.knowledgeAreas.GetByName(ctx, row.Get("Knowledge Area"))
			if err != nil {
				return res, rowErrs, err
			}
			if !found {
				rowErrs = append(rowErrs, fmt.Sprintf("skills row %d: unknown knowledge area %q", n, row.Get("Knowledge Area")))
				res.SkillRowsSkipped++
				continue
			}
			cat, found, err := imp.categories.GetByName(ctx, row.Get("Skill Category"))
			if err != nil {
				return res, rowErrs, err
			}
			if !found {
				rowErrs = append(rowErrs, fmt.Sprintf("skills row %d: unknown skill category %q", n, row.Get("Skill Category")))
				res.SkillRowsSkipped++
				continue
			}

			existing, found, err := imp.skills.GetByName(ctx, name)
			if err != nil {
				return res, rowErrs, err
			}
			if found {
				err = imp.skills.Update(ctx, existing.ID, map[string]any{
					"name":            name,
					"purpose":         row.Get("Purpose"),
					"knowledgeAreaId": area.ID,
					"skillCategoryId": cat.ID,
				})
			} else {
				err = imp.skills.Add(ctx, domain.Skill{
					ID:              uuid.NewString(),
					Name:            name,
					Purpose:         row.Get("Purpose"),
					KnowledgeAreaID: area.ID,
					SkillCategoryID: cat.ID,
				})
			}
			if err != nil {
				return res, rowErrs, err
			}
			res.SkillsUpserted++
		}
	}

	return res, rowErrs, nil
}
