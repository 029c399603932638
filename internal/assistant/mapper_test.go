package assistant

import (
	"context"
	"errors"
	"testing"

	"skills-radar/internal/pipeline"
)

func TestMapperUsesModelAnswerWhenUsable(t *testing.T) {
	stub := &stubAssistant{reply: `{"entity":"member","fields":{"corporateEmail":"Email"}}`}
	m := NewMapper(stub, nil)

	mapping, err := m.InferMapping(context.Background(), []pipeline.Row{{"Email": "a@b.c"}})
	if err != nil {
		t.Fatalf("InferMapping: %v", err)
	}
	if mapping.Entity != pipeline.MappingEntityMember {
		t.Fatalf("entity = %q", mapping.Entity)
	}
	if mapping.Fields["corporateEmail"] != "Email" {
		t.Fatalf("fields = %v", mapping.Fields)
	}
}

func TestMapperFallsBackToHeuristicsOnModelFailure(t *testing.T) {
	stub := &stubAssistant{err: errors.New("timeout")}
	m := NewMapper(stub, nil)

	mapping, err := m.InferMapping(context.Background(), []pipeline.Row{
		{"Corporate Email": "a@b.c", "Full Name": "A", "Location": "Lisbon"},
	})
	if err != nil {
		t.Fatalf("InferMapping: %v", err)
	}
	if mapping.Entity != pipeline.MappingEntityMember {
		t.Fatalf("entity = %q, want member", mapping.Entity)
	}
	if mapping.Fields["corporateEmail"] != "Corporate Email" {
		t.Fatalf("fields = %v", mapping.Fields)
	}
}

func TestMapperFallsBackWhenAnswerIsNotJSON(t *testing.T) {
	stub := &stubAssistant{reply: "these look like clients to me"}
	m := NewMapper(stub, nil)

	mapping, err := m.InferMapping(context.Background(), []pipeline.Row{
		{"Client": "Acme", "Industry": "Banking"},
	})
	if err != nil {
		t.Fatalf("InferMapping: %v", err)
	}
	if mapping.Entity != pipeline.MappingEntityClient {
		t.Fatalf("entity = %q, want client", mapping.Entity)
	}
	if mapping.Fields["industry"] != "Industry" {
		t.Fatalf("fields = %v", mapping.Fields)
	}
}

func TestHeuristicMappingDefaultsToSkills(t *testing.T) {
	mapping := heuristicMapping([]pipeline.Row{{"Skill": "Go", "Description": "Services"}})
	if mapping.Entity != pipeline.MappingEntitySkill {
		t.Fatalf("entity = %q, want skill", mapping.Entity)
	}
	if mapping.Fields["name"] != "Skill" || mapping.Fields["purpose"] != "Description" {
		t.Fatalf("fields = %v", mapping.Fields)
	}
}
