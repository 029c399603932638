package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProficiencyFromText_ExplicitMarkerWins(t *testing.T) {
	// The "(n)" marker outranks every word in the text.
	assert.Equal(t, 4, ProficiencyFromText("I have wide knowledge of the domain (4)"))
	assert.Equal(t, 1, ProficiencyFromText("Expert (1)"))
	assert.Equal(t, 5, ProficiencyFromText("(5)"))
}

func TestProficiencyFromText_NamedSurveyLevels(t *testing.T) {
	cases := map[string]int{
		"Don't know":                      1,
		"Know but didn't use":             2,
		"Know well, used it several times": 3,
		"Wide knowledge, I am a reference": 4,
		"Expert":                           5,
	}
	for text, want := range cases {
		assert.Equal(t, want, ProficiencyFromText(text), "text %q", text)
	}
}

func TestProficiencyFromText_KeywordHeuristics(t *testing.T) {
	assert.Equal(t, 4, ProficiencyFromText("I'm the senior on this topic"))
	assert.Equal(t, 3, ProficiencyFromText("comfortable working with it daily"))
	assert.Equal(t, 2, ProficiencyFromText("tried it once in a side project"))
	assert.Equal(t, 1, ProficiencyFromText("only heard about it"))
}

func TestProficiencyFromText_Default(t *testing.T) {
	assert.Equal(t, 2, ProficiencyFromText(""))
	assert.Equal(t, 2, ProficiencyFromText("something entirely unrelated"))
}

func TestProficiencyFromText_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, 3, ProficiencyFromText("Know well"))
	}
}

func TestHasRecognizedLevel(t *testing.T) {
	assert.True(t, hasRecognizedLevel("Expert"))
	assert.True(t, hasRecognizedLevel("(3)"))
	assert.False(t, hasRecognizedLevel("I would love to learn more"))
	assert.False(t, hasRecognizedLevel(""))
}
