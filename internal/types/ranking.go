package types

import "time"

// Criterion names used in a ScoreBreakdown.
const (
	CriterionSemanticSimilarity = "semantic_similarity"
	CriterionSkillMatch         = "skill_match"
	CriterionExperienceMatch    = "experience_match"
	CriterionEducationMatch     = "education_match"
	CriterionLocationPreference = "location_preference"
	CriterionAvailability       = "availability"
)

// ScoreBreakdown maps each ranking criterion to its score in [0,1] and
// carries the weighted overall score. Produced fresh per ranking call and
// never mutated afterwards.
type ScoreBreakdown struct {
	Criteria     map[string]float64 `json:"criteria"`
	OverallScore float64            `json:"overall_score"`
}

// RankedCandidate is one entry in the output of a ranking call. Ordering of
// the containing list (overall score descending, input order on ties) is the
// primary invariant.
type RankedCandidate struct {
	CandidateID    string         `json:"candidate_id"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	MatchReasons   []string       `json:"match_reasons"`
	Recommendation string         `json:"recommendation"`
	Rank           int            `json:"rank"`
	Percentile     float64        `json:"percentile"`
}

// ScoreDistribution buckets ranked candidates by overall score.
type ScoreDistribution struct {
	Excellent int `json:"excellent"` // >= 0.8
	Good      int `json:"good"`      // [0.6, 0.8)
	Fair      int `json:"fair"`      // [0.4, 0.6)
	Poor      int `json:"poor"`      // < 0.4
}

// MatchingSummary aggregates one ranking run for reporting.
type MatchingSummary struct {
	AverageMatchScore        float64           `json:"average_match_score"`
	HighestMatchScore        float64           `json:"highest_match_score"`
	CandidatesAboveThreshold int               `json:"candidates_above_threshold"`
	ScoreDistribution        ScoreDistribution `json:"score_distribution"`
}

// MatchReport is the top-level result of matching a candidate pool against
// one job posting.
type MatchReport struct {
	JobID                    string            `json:"job_id,omitempty"`
	JobTitle                 string            `json:"job_title"`
	TotalCandidatesEvaluated int               `json:"total_candidates_evaluated"`
	ShortlistedCandidates    int               `json:"shortlisted_candidates"`
	TopCandidates            []RankedCandidate `json:"top_candidates"`
	MatchingSummary          MatchingSummary   `json:"matching_summary"`
	GeneratedAt              time.Time         `json:"generated_at"`
}
