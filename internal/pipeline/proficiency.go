package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

var explicitLevelRe = regexp.MustCompile(`\(([1-5])\)`)

// namedLevels are the canonical expertise answers of the historical skills
// survey, matched before the looser keyword heuristics.
var namedLevels = []struct {
	needle string
	level  int
}{
	{"don't know", 1},
	{"dont know", 1},
	{"know but didn't use", 2},
	{"know but didnt use", 2},
	{"know well", 3},
	{"used it several times", 3},
	{"wide knowledge", 4},
	{"reference", 4},
	{"expert", 5},
}

// keywordLevels are the fallback heuristics, checked highest level first.
var keywordLevels = []struct {
	needles []string
	level   int
}{
	{[]string{"expert", "reference", "senior"}, 4},
	{[]string{"know well", "experience", "comfortable"}, 3},
	{[]string{"used", "tried", "basic"}, 2},
	{[]string{"heard", "aware"}, 1},
}

const defaultProficiency = 2

// ProficiencyFromText maps a free-text expertise description to an integer
// level 1-5. Priority order: explicit "(n)" marker, then named survey
// levels, then keyword heuristics, then a default of 2.
func ProficiencyFromText(text string) int {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return defaultProficiency
	}

	if m := explicitLevelRe.FindStringSubmatch(t); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}

	for _, nl := range namedLevels {
		if strings.Contains(t, nl.needle) {
			return nl.level
		}
	}

	for _, kl := range keywordLevels {
		for _, needle := range kl.needles {
			if strings.Contains(t, needle) {
				return kl.level
			}
		}
	}

	return defaultProficiency
}

// hasRecognizedLevel reports whether the text carries an explicit marker or
// a named survey level, as opposed to only matching loose heuristics. Rows
// that look like open-ended survey prompts are only kept when this is true.
func hasRecognizedLevel(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	if explicitLevelRe.MatchString(t) {
		return true
	}
	for _, nl := range namedLevels {
		if strings.Contains(t, nl.needle) {
			return true
		}
	}
	return false
}
