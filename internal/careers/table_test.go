package careers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions_TableShape(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 13)

	seen := make(map[string]bool)
	for _, def := range defs {
		assert.NotEmpty(t, def.Career)
		assert.NotEmpty(t, def.RequiredSkills)
		assert.Greater(t, def.Weight, 0.0)
		assert.LessOrEqual(t, def.Weight, 1.0)
		assert.False(t, seen[def.Career], "duplicate career %s", def.Career)
		seen[def.Career] = true
	}
}

func TestLookup(t *testing.T) {
	def, ok := Lookup("Data Scientist")
	require.True(t, ok)
	assert.Contains(t, def.RequiredSkills, "machine learning")
	assert.Equal(t, 0.9, def.Weight)

	_, ok = Lookup("Astronaut")
	assert.False(t, ok)
}

func TestGrowthPath(t *testing.T) {
	assert.Equal(t,
		[]string{"Junior Developer", "Software Developer", "Senior Developer", "Tech Lead", "Engineering Manager"},
		GrowthPath("Software Developer"),
	)
	assert.Equal(t,
		[]string{"Entry Level", "Mid Level", "Senior Level", "Lead", "Manager"},
		GrowthPath("Civil Engineer"),
	)
}

func TestIndustryDemand(t *testing.T) {
	assert.Equal(t, "High", IndustryDemand("Software Developer"))
	assert.Equal(t, "Medium", IndustryDemand("Product Manager"))
	assert.Equal(t, "Moderate", IndustryDemand("Civil Engineer"))
	assert.Equal(t, "Moderate", IndustryDemand("Astronaut"))
}

func TestRoadmap_LevelsBuildOnEachOther(t *testing.T) {
	roadmap, ok := Roadmap("Data Scientist")
	require.True(t, ok)

	def, _ := Lookup("Data Scientist")
	assert.Equal(t, def.RequiredSkills[:3], roadmap.EntryLevel.KeySkills)
	assert.Len(t, roadmap.MidLevel.KeySkills, len(def.RequiredSkills)+2)
	assert.Len(t, roadmap.SeniorLevel.KeySkills, len(def.RequiredSkills)+len(def.PreferredSkills))
	assert.Equal(t, "0-2 years", roadmap.EntryLevel.Experience)
	assert.Equal(t, "5+ years", roadmap.SeniorLevel.Experience)
	assert.Equal(t, "High", roadmap.IndustryDemand)
	assert.NotEmpty(t, roadmap.GrowthPath)

	_, ok = Roadmap("Astronaut")
	assert.False(t, ok)
}
