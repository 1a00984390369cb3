package careers

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-match/internal/types"
)

// Component weights of a career match score.
const (
	requiredSkillsWeight  = 0.4
	preferredSkillsWeight = 0.3
	academicFieldWeight   = 0.2
	softSkillsWeight      = 0.1
)

// MatchScore scores a candidate's skills and academic field against one
// career definition. Components are weighted 0.4/0.3/0.2/0.1 and the sum is
// scaled by the career weight, clamped to 1.0.
func MatchScore(def types.CareerDefinition, skills []string, academicField string) float64 {
	skillsLower := lowerAll(skills)
	fieldLower := strings.ToLower(strings.TrimSpace(academicField))

	score := fractionCovered(def.RequiredSkills, skillsLower) * requiredSkillsWeight
	score += fractionCovered(def.PreferredSkills, skillsLower) * preferredSkillsWeight
	if fieldMatches(def.AcademicFields, fieldLower) {
		score += academicFieldWeight
	}
	score += fractionCovered(def.SoftSkills, skillsLower) * softSkillsWeight

	weighted := score * def.Weight
	if weighted > 1.0 {
		return 1.0
	}
	return weighted
}

// recommendationReason explains a rule-based recommendation in terms of the
// candidate's matching skills and academic background.
func recommendationReason(def types.CareerDefinition, skills []string, academicField string) string {
	var matching []string
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		for _, required := range def.RequiredSkills {
			if strings.Contains(skillLower, strings.ToLower(required)) {
				matching = append(matching, skill)
				break
			}
		}
	}

	var parts []string
	if len(matching) > 0 {
		parts = append(parts, fmt.Sprintf("Matching skills: %s", strings.Join(firstN(matching, 3), ", ")))
	}
	if academicField != "" && fieldMatches(def.AcademicFields, strings.ToLower(academicField)) {
		parts = append(parts, fmt.Sprintf("Academic background in %s", academicField))
	}

	if len(parts) == 0 {
		return "General aptitude match"
	}
	return strings.Join(parts, "; ")
}

// fractionCovered returns the share of wanted skills that appear as a
// substring of at least one candidate skill.
func fractionCovered(wanted []string, candidateSkillsLower []string) float64 {
	if len(wanted) == 0 {
		return 0
	}

	matches := 0
	for _, want := range wanted {
		wantLower := strings.ToLower(want)
		for _, skill := range candidateSkillsLower {
			if strings.Contains(skill, wantLower) {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(wanted))
}

func fieldMatches(fields []string, academicFieldLower string) bool {
	if academicFieldLower == "" {
		return false
	}
	for _, field := range fields {
		if strings.Contains(academicFieldLower, strings.ToLower(field)) {
			return true
		}
	}
	return false
}

func lowerAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.ToLower(strings.TrimSpace(item)))
	}
	return out
}
