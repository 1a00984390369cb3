package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-match/internal/types"
)

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchReport(&types.MatchReport{
		JobTitle:                 "Data Analyst",
		TotalCandidatesEvaluated: 3,
		ShortlistedCandidates:    2,
		TopCandidates: []types.RankedCandidate{
			{
				CandidateID:    "cand-1",
				Rank:           1,
				Percentile:     100,
				Recommendation: "Recommended - Good fit with minor gaps",
				MatchReasons:   []string{"Good skill alignment (0.85)"},
				ScoreBreakdown: types.ScoreBreakdown{OverallScore: 0.72},
			},
		},
		MatchingSummary: types.MatchingSummary{
			AverageMatchScore:        0.55,
			HighestMatchScore:        0.72,
			CandidatesAboveThreshold: 1,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH REPORT")
	assert.Contains(t, out, "Data Analyst")
	assert.Contains(t, out, "TOP CANDIDATES")
	assert.Contains(t, out, "cand-1")
	assert.Contains(t, out, "0.72")
}

func TestPrintMatchReport_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendationReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRecommendationReport(&types.RecommendationReport{
		Recommendations: []types.CareerRecommendation{
			{Career: "Data Scientist", Confidence: 0.82, Source: types.SourceAIAndRules, Reason: "Matching skills: Python"},
		},
		SkillGaps: map[string]types.SkillGap{
			"Data Scientist": {
				MissingSkills: []string{"data analysis"},
				Priority:      "medium",
				LearningResources: []types.LearningResource{
					{Skill: "data analysis", Platform: "YouTube/Online Tutorials", Duration: "2-4 weeks"},
				},
			},
		},
		ConfidenceScore: 0.9,
	})

	out := buf.String()
	assert.Contains(t, out, "CAREER RECOMMENDATIONS")
	assert.Contains(t, out, "Data Scientist")
	assert.Contains(t, out, "ai_and_rules")
	assert.Contains(t, out, "SKILL GAPS")
	assert.Contains(t, out, "medium priority")
}

func TestPrintAnalytics(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalytics(&types.MatchingAnalytics{
		TotalEntries:  4,
		PositiveRate:  0.5,
		HireRate:      0.25,
		AverageRating: 3.5,
	})

	out := buf.String()
	assert.Contains(t, out, "MATCHING ANALYTICS")
	assert.Contains(t, out, "Feedback entries: 4")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "3.5")
}
