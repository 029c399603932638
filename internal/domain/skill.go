package domain

type KnowledgeArea struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SkillCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Criterion string `json:"criterion"`
}

// Skill references exactly one KnowledgeArea and one SkillCategory. Dangling
// references degrade to "Unknown" at display time, they never fail a read.
type Skill struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Purpose         string `json:"purpose"`
	KnowledgeAreaID string `json:"knowledgeAreaId"`
	SkillCategoryID string `json:"skillCategoryId"`
}

// MemberSkill is composite-keyed by (memberId, skillId): at most one row per
// pair, writes for an existing pair overwrite in place.
type MemberSkill struct {
	MemberID         string `json:"memberId"`
	SkillID          string `json:"skillId"`
	ScaleID          string `json:"scaleId"`
	ProficiencyValue string `json:"proficiencyValue"`
}
