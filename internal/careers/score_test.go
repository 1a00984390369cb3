package careers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchScore_WeightedComponents(t *testing.T) {
	def, ok := Lookup("Data Scientist")
	require.True(t, ok)

	skills := []string{"Python", "Machine Learning", "Statistics", "SQL", "Communication"}
	score := MatchScore(def, skills, "Computer Science")

	// required 3/4*0.4 + preferred 1/5*0.3 + academic 0.2 + soft 1/3*0.1,
	// scaled by the 0.9 career weight.
	want := (3.0/4.0*0.4 + 1.0/5.0*0.3 + 0.2 + 1.0/3.0*0.1) * 0.9
	assert.InDelta(t, want, score, 1e-9)
}

func TestMatchScore_AcademicFieldOnly(t *testing.T) {
	def, ok := Lookup("Data Scientist")
	require.True(t, ok)

	score := MatchScore(def, nil, "BSc Statistics")
	assert.InDelta(t, 0.2*0.9, score, 1e-9)
}

func TestMatchScore_NoSignal(t *testing.T) {
	def, ok := Lookup("Civil Engineer")
	require.True(t, ok)

	assert.Equal(t, 0.0, MatchScore(def, []string{"painting"}, "fine arts"))
}

func TestMatchScore_NeverExceedsOne(t *testing.T) {
	def, ok := Lookup("Software Developer")
	require.True(t, ok)

	everything := append(append([]string{}, def.RequiredSkills...), def.PreferredSkills...)
	everything = append(everything, def.SoftSkills...)

	score := MatchScore(def, everything, "computer science")
	assert.LessOrEqual(t, score, 1.0)
	assert.Greater(t, score, 0.9)
}

func TestMatchScore_SubstringMatching(t *testing.T) {
	def, ok := Lookup("Software Developer")
	require.True(t, ok)

	// "python" is required and appears inside "Python Programming".
	withSubstring := MatchScore(def, []string{"Python Programming"}, "")
	without := MatchScore(def, []string{"Cooking"}, "")
	assert.Greater(t, withSubstring, without)
}

func TestRecommendationReason(t *testing.T) {
	def, ok := Lookup("Data Scientist")
	require.True(t, ok)

	reason := recommendationReason(def, []string{"Python", "Machine Learning"}, "Computer Science")
	assert.Contains(t, reason, "Matching skills: Python, Machine Learning")
	assert.Contains(t, reason, "Academic background in Computer Science")

	generic := recommendationReason(def, []string{"Cooking"}, "Culinary Arts")
	assert.Equal(t, "General aptitude match", generic)
}

func TestRecommendationReason_CapsListedSkills(t *testing.T) {
	def, ok := Lookup("Software Developer")
	require.True(t, ok)

	reason := recommendationReason(def, []string{"Python", "Java", "JavaScript", "Programming"}, "")
	assert.Contains(t, reason, "Matching skills: Python, Java, JavaScript")
	assert.NotContains(t, reason, "Programming")
}
