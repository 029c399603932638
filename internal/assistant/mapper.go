package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"skills-radar/internal/pipeline"
)

// Mapper infers a smart-import mapping by showing the assistant a sample of
// rows. When the model answer is unusable it falls back to a column-name
// heuristic, so an outage never blocks the import preview.
type Mapper struct {
	assistant Assistant
	logger    *log.Logger
}

func NewMapper(a Assistant, logger *log.Logger) *Mapper {
	if logger == nil {
		logger = log.Default()
	}
	return &Mapper{assistant: a, logger: logger}
}

func (m *Mapper) InferMapping(ctx context.Context, sample []pipeline.Row) (pipeline.Mapping, error) {
	sampleJSON, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return pipeline.Mapping{}, err
	}

	prompt := fmt.Sprintf(
		"These rows were uploaded to a team skills dashboard:\n%s\n\n"+
			"Decide which entity they represent and how columns map to fields. "+
			"Entities and their fields:\n"+
			"- member: corporateEmail, fullName, hireDate, category, location\n"+
			"- skill: name, purpose\n"+
			"- client: name, industry, location\n\n"+
			`Reply with JSON shaped exactly as {"entity": string, "fields": {field: sourceColumn}}.`,
		sampleJSON,
	)

	raw, err := m.assistant.SendMessage(ctx, prompt)
	if err != nil {
		m.logger.Printf("[Assistant] mapping inference failed, using heuristics: %v", err)
		return heuristicMapping(sample), nil
	}

	payload, ok := ExtractJSON(raw)
	if !ok {
		m.logger.Printf("[Assistant] mapping response was not JSON, using heuristics")
		return heuristicMapping(sample), nil
	}
	var mapping pipeline.Mapping
	if err := json.Unmarshal(payload, &mapping); err != nil || mapping.Entity == "" {
		m.logger.Printf("[Assistant] mapping response unusable, using heuristics")
		return heuristicMapping(sample), nil
	}
	if mapping.Fields == nil {
		mapping.Fields = map[string]string{}
	}
	return mapping, nil
}

// heuristicMapping guesses from column names alone: an email-ish column
// means members, an industry column means clients, otherwise skills.
func heuristicMapping(sample []pipeline.Row) pipeline.Mapping {
	columns := make([]string, 0)
	if len(sample) > 0 {
		for k := range sample[0] {
			columns = append(columns, k)
		}
	}

	find := func(needles ...string) string {
		for _, col := range columns {
			lc := strings.ToLower(col)
			for _, n := range needles {
				if strings.Contains(lc, n) {
					return col
				}
			}
		}
		return ""
	}

	if col := find("email"); col != "" {
		fields := map[string]string{"corporateEmail": col}
		if c := find("name"); c != "" {
			fields["fullName"] = c
		}
		if c := find("hire", "date"); c != "" {
			fields["hireDate"] = c
		}
		if c := find("category"); c != "" {
			fields["category"] = c
		}
		if c := find("location", "city"); c != "" {
			fields["location"] = c
		}
		return pipeline.Mapping{Entity: pipeline.MappingEntityMember, Fields: fields}
	}

	if col := find("industry"); col != "" {
		fields := map[string]string{"industry": col}
		if c := find("name", "client"); c != "" {
			fields["name"] = c
		}
		if c := find("location", "city"); c != "" {
			fields["location"] = c
		}
		return pipeline.Mapping{Entity: pipeline.MappingEntityClient, Fields: fields}
	}

	fields := map[string]string{}
	if c := find("name", "skill"); c != "" {
		fields["name"] = c
	}
	if c := find("purpose", "description"); c != "" {
		fields["purpose"] = c
	}
	return pipeline.Mapping{Entity: pipeline.MappingEntitySkill, Fields: fields}
}
