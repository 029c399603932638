package domain

import "strconv"

const (
	ScaleTypeNumeric     = "Numeric"
	ScaleTypeQualitative = "Qualitative"
)

// Scale maps 1-based integer proficiency levels to labels: Values[i] labels
// level i+1.
type Scale struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

// LabelFor resolves a stringified proficiency level to its label, falling
// back to the raw value when the level is unparseable or out of range.
func (s Scale) LabelFor(proficiency string) string {
	n, err := strconv.Atoi(proficiency)
	if err != nil || n < 1 || n > len(s.Values) {
		return proficiency
	}
	return s.Values[n-1]
}
