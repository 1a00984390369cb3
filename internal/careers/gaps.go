package careers

import (
	"strings"

	"github.com/jonathan/career-match/internal/types"
)

// highPriorityGapThreshold is the missing-skill count at which a gap is
// flagged high priority.
const highPriorityGapThreshold = 4

// learningResources maps a missing skill to a concrete learning suggestion.
var learningResources = map[string]types.LearningResource{
	"python":           {Platform: "Codecademy", Type: "Course", Duration: "4-6 weeks"},
	"java":             {Platform: "Oracle Java Tutorials", Type: "Documentation", Duration: "6-8 weeks"},
	"javascript":       {Platform: "freeCodeCamp", Type: "Interactive", Duration: "3-4 weeks"},
	"sql":              {Platform: "W3Schools", Type: "Tutorial", Duration: "2-3 weeks"},
	"machine learning": {Platform: "Coursera", Type: "Course", Duration: "8-12 weeks"},
}

// skillGaps identifies, for each recommended career, the required skills the
// candidate does not cover, with learning resources for the top three.
func skillGaps(recommendations []types.CareerRecommendation, currentSkills []string) map[string]types.SkillGap {
	gaps := make(map[string]types.SkillGap)
	skillsLower := lowerAll(currentSkills)

	for _, rec := range recommendations {
		def, ok := Lookup(rec.Career)
		if !ok {
			continue
		}

		var missing []string
		for _, required := range def.RequiredSkills {
			requiredLower := strings.ToLower(required)
			covered := false
			for _, skill := range skillsLower {
				if strings.Contains(skill, requiredLower) {
					covered = true
					break
				}
			}
			if !covered {
				missing = append(missing, required)
			}
		}

		if len(missing) == 0 {
			continue
		}

		priority := "medium"
		if len(missing) >= highPriorityGapThreshold {
			priority = "high"
		}

		gaps[rec.Career] = types.SkillGap{
			MissingSkills:     missing,
			Priority:          priority,
			LearningResources: suggestResources(missing),
		}
	}

	return gaps
}

// suggestResources returns learning resources for up to three missing skills.
// Skills without a curated entry get a generic video-tutorial suggestion.
func suggestResources(missingSkills []string) []types.LearningResource {
	resources := make([]types.LearningResource, 0, 3)
	for _, skill := range firstN(missingSkills, 3) {
		if resource, ok := learningResources[strings.ToLower(skill)]; ok {
			resource.Skill = skill
			resources = append(resources, resource)
			continue
		}
		resources = append(resources, types.LearningResource{
			Skill:    skill,
			Platform: "YouTube/Online Tutorials",
			Type:     "Video",
			Duration: "2-4 weeks",
		})
	}
	return resources
}

// Keyword buckets for skill categorization.
var (
	technicalKeywords = []string{"programming", "python", "java", "javascript", "sql", "html", "css"}
	softKeywords      = []string{"communication", "leadership", "teamwork", "problem solving"}
	toolKeywords      = []string{"excel", "powerpoint", "photoshop", "autocad", "git"}
)

// analyzeSkills buckets skills into technical/soft/tools/domain categories.
// A skill can land in more than one bucket; skills matching nothing go to
// the domain bucket.
func analyzeSkills(skills []string) types.SkillAnalysis {
	categories := map[string][]string{
		"technical": {},
		"soft":      {},
		"domain":    {},
		"tools":     {},
	}

	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		categorized := false

		if containsAnyKeyword(skillLower, technicalKeywords) {
			categories["technical"] = append(categories["technical"], skill)
			categorized = true
		}
		if containsAnyKeyword(skillLower, softKeywords) {
			categories["soft"] = append(categories["soft"], skill)
			categorized = true
		}
		if containsAnyKeyword(skillLower, toolKeywords) {
			categories["tools"] = append(categories["tools"], skill)
			categorized = true
		}
		if !categorized {
			categories["domain"] = append(categories["domain"], skill)
		}
	}

	total := len(skills)
	denominator := total
	if denominator == 0 {
		denominator = 1
	}

	return types.SkillAnalysis{
		Categories:     categories,
		TotalSkills:    total,
		TechnicalRatio: float64(len(categories["technical"])) / float64(denominator),
		SoftRatio:      float64(len(categories["soft"])) / float64(denominator),
	}
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
