package types

import "time"

// Recommendation source tags.
const (
	SourceRuleBased  = "rule_based"
	SourceAIOnly     = "ai_only"
	SourceAIAndRules = "ai_and_rules"
	SourceFallback   = "fallback"
)

// CareerRecommendation is one recommended career with its supporting
// confidence and provenance.
type CareerRecommendation struct {
	Career     string  `json:"career"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Reason     string  `json:"reason"`
}

// SkillAnalysis categorizes a candidate's skills for reporting.
type SkillAnalysis struct {
	Categories     map[string][]string `json:"categories"`
	TotalSkills    int                 `json:"total_skills"`
	TechnicalRatio float64             `json:"technical_ratio"`
	SoftRatio      float64             `json:"soft_ratio"`
}

// LearningResource suggests how to acquire one missing skill.
type LearningResource struct {
	Skill    string `json:"skill"`
	Platform string `json:"platform"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
}

// SkillGap lists the required skills a candidate is missing for one
// recommended career.
type SkillGap struct {
	MissingSkills     []string           `json:"missing_skills"`
	Priority          string             `json:"priority"` // high when >= 4 missing, else medium
	LearningResources []LearningResource `json:"learning_resources"`
}

// CareerLevel describes one rung of a career's progression.
type CareerLevel struct {
	Experience  string   `json:"experience"`
	KeySkills   []string `json:"key_skills"`
	SalaryRange string   `json:"salary_range"`
}

// CareerRoadmap describes progression, growth path and demand for a career.
type CareerRoadmap struct {
	EntryLevel     CareerLevel `json:"entry_level"`
	MidLevel       CareerLevel `json:"mid_level"`
	SeniorLevel    CareerLevel `json:"senior_level"`
	GrowthPath     []string    `json:"growth_path"`
	IndustryDemand string      `json:"industry_demand"`
}

// CareerDefinition is one entry of the static skill-career table.
type CareerDefinition struct {
	Career          string   `json:"career"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	SoftSkills      []string `json:"soft_skills"`
	AcademicFields  []string `json:"academic_fields"`
	Weight          float64  `json:"weight"`
}

// RecommendationReport is the full output of a recommendation call.
type RecommendationReport struct {
	Recommendations []CareerRecommendation   `json:"recommendations"`
	SkillAnalysis   SkillAnalysis            `json:"skill_analysis"`
	CareerRoadmaps  map[string]CareerRoadmap `json:"career_roadmaps"`
	SkillGaps       map[string]SkillGap      `json:"skill_gaps"`
	ConfidenceScore float64                  `json:"confidence_score"`
	GeneratedAt     time.Time                `json:"generated_at"`
}

// ProfileAnalysis is the externally-sourced (AI) view of a candidate profile
// consumed by the recommendation engine. A failed or unavailable analysis is
// represented by the zero value, never by an error.
type ProfileAnalysis struct {
	CareerRecommendations []CareerRecommendation `json:"career_recommendations"`
	Summary               string                 `json:"summary,omitempty"`
	ConfidenceScore       float64                `json:"confidence_score"`
}
