// Package ranking ranks candidate profiles against a job posting using
// multi-criteria weighted scoring.
package ranking

import (
	"strings"

	"github.com/jonathan/career-match/internal/types"
)

// Criterion weights. They total 1.0 by construction.
const (
	semanticSimilarityWeight = 0.35
	skillMatchWeight         = 0.25
	experienceMatchWeight    = 0.15
	educationMatchWeight     = 0.15
	locationPreferenceWeight = 0.05
	availabilityWeight       = 0.05
)

// defaultSkillScore applies when either skill list is empty.
const defaultSkillScore = 0.3

// skillSynonyms maps a canonical skill to variations that count as a match.
var skillSynonyms = map[string][]string{
	"javascript":       {"js", "node.js", "nodejs"},
	"python":           {"py"},
	"machine learning": {"ml", "ai", "artificial intelligence"},
	"database":         {"sql", "mysql", "postgresql"},
	"web development":  {"frontend", "backend", "full stack"},
}

// educationKeywords are the academic fields matched between a job
// description and a candidate's major/degree.
var educationKeywords = []string{
	"computer science", "engineering", "technology", "business",
	"mathematics", "statistics", "data science",
}

// skillMatchScore scores how many required skills the candidate covers.
// Matching is case-insensitive substring in either direction, plus the
// synonym table. Returns matched/required, clamped to 1.0.
func skillMatchScore(required []string, candidateSkills []string) float64 {
	if len(required) == 0 || len(candidateSkills) == 0 {
		return defaultSkillScore
	}

	requiredLower := normalizeSkills(required)
	candidateLower := normalizeSkills(candidateSkills)

	matches := 0
	for _, req := range requiredLower {
		for _, cand := range candidateLower {
			if strings.Contains(cand, req) || strings.Contains(req, cand) || skillsAreSimilar(req, cand) {
				matches++
				break
			}
		}
	}

	return clamp01(float64(matches) / float64(len(requiredLower)))
}

// skillsAreSimilar reports whether two normalized skills are synonyms.
func skillsAreSimilar(a, b string) bool {
	for canonical, synonyms := range skillSynonyms {
		if strings.Contains(a, canonical) && containsAny(b, synonyms) {
			return true
		}
		if strings.Contains(b, canonical) && containsAny(a, synonyms) {
			return true
		}
	}
	return false
}

// experienceMatchScore bands a coarse candidate experience estimate against
// the job's experience level.
func experienceMatchScore(experienceLevel string, candidate *types.CandidateProfile) float64 {
	years := estimateExperienceYears(candidate)

	switch strings.ToLower(experienceLevel) {
	case types.ExperienceEntry, types.ExperienceJunior:
		if years <= 2 {
			return 0.9
		}
		return 0.6
	case types.ExperienceMid:
		if years >= 1 && years <= 6 {
			return 0.9
		}
		return 0.7
	case types.ExperienceSenior, types.ExperienceLead:
		if years >= 3 {
			return 0.9
		}
		return 0.5
	default:
		return 0.7
	}
}

// estimateExperienceYears derives a coarse experience figure from profile
// richness. Real tenure parsing belongs to the data store, not this core.
func estimateExperienceYears(candidate *types.CandidateProfile) int {
	indicators := len(candidate.CoCurricular) + len(candidate.TechnicalSkills)

	switch {
	case indicators > 10:
		return 3
	case indicators > 5:
		return 1
	default:
		return 0
	}
}

// educationMatchScore tiers the keyword overlap between the job description
// and the candidate's academic background: 0.9 when both mention a known
// field, 0.7 when only the candidate does, 0.5 otherwise.
func educationMatchScore(jobDescription string, record types.AcademicRecord) float64 {
	description := strings.ToLower(jobDescription)
	major := strings.ToLower(record.Major)
	degree := strings.ToLower(record.Degree)

	jobMentionsField := false
	candidateMentionsField := false
	for _, keyword := range educationKeywords {
		if strings.Contains(description, keyword) {
			jobMentionsField = true
		}
		if strings.Contains(major, keyword) || strings.Contains(degree, keyword) {
			candidateMentionsField = true
		}
	}

	switch {
	case jobMentionsField && candidateMentionsField:
		return 0.9
	case candidateMentionsField:
		return 0.7
	default:
		return 0.5
	}
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		normalized := strings.ToLower(strings.TrimSpace(s))
		if normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
