package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-match/internal/embedding"
	"github.com/jonathan/career-match/internal/types"
)

type failingProvider struct{}

func (failingProvider) EmbedText(ctx context.Context, text string) ([]float64, error) {
	return nil, errors.New("provider unavailable")
}

func newOfflineRanker(opts ...Option) *Ranker {
	return NewRanker(embedding.NewMatcher(nil, nil), nil, opts...)
}

func testJob() *types.JobRequirement {
	return &types.JobRequirement{
		Title:           "Data Analyst",
		Description:     "Analyze data for a computer science heavy team",
		RequiredSkills:  []string{"python", "sql"},
		ExperienceLevel: types.ExperienceEntry,
	}
}

func testPool() []types.CandidateProfile {
	return []types.CandidateProfile{
		{
			ID:              "cand-strong",
			TechnicalSkills: []string{"Python", "SQL", "Excel"},
			SoftSkills:      []string{"Communication"},
			AcademicRecord:  types.AcademicRecord{Major: "Computer Science"},
		},
		{
			ID:              "cand-weak",
			TechnicalSkills: []string{"Photoshop"},
			AcademicRecord:  types.AcademicRecord{Major: "Fine Arts"},
		},
		{
			ID:              "cand-mid",
			TechnicalSkills: []string{"Python"},
			AcademicRecord:  types.AcademicRecord{Major: "Statistics"},
		},
	}
}

func TestRankCandidates_ShapeAndOrdering(t *testing.T) {
	ranker := newOfflineRanker()
	pool := testPool()

	ranked := ranker.RankCandidates(context.Background(), testJob(), pool)
	require.Len(t, ranked, len(pool))

	seen := make(map[int]bool)
	for i, rc := range ranked {
		assert.Equal(t, i+1, rc.Rank)
		assert.False(t, seen[rc.Rank], "duplicate rank %d", rc.Rank)
		seen[rc.Rank] = true

		if i > 0 {
			assert.GreaterOrEqual(t,
				ranked[i-1].ScoreBreakdown.OverallScore,
				rc.ScoreBreakdown.OverallScore,
			)
		}
	}

	// Percentile of the top candidate is 100, of the last one 100/N.
	assert.InDelta(t, 100.0, ranked[0].Percentile, 1e-9)
	assert.InDelta(t, 100.0/float64(len(pool)), ranked[len(pool)-1].Percentile, 1e-9)
}

func TestRankCandidates_StrongCandidateWins(t *testing.T) {
	ranker := newOfflineRanker()

	ranked := ranker.RankCandidates(context.Background(), testJob(), testPool())
	require.NotEmpty(t, ranked)

	top := ranked[0]
	assert.Equal(t, "cand-strong", top.CandidateID)
	assert.Equal(t, 1.0, top.ScoreBreakdown.Criteria[types.CriterionSkillMatch])
	assert.Contains(t, []string{
		"Highly Recommended - Excellent match for the position",
		"Recommended - Good fit with minor gaps",
	}, top.Recommendation)
	assert.Equal(t, "cand-weak", ranked[len(ranked)-1].CandidateID)
}

func TestRankCandidates_Deterministic(t *testing.T) {
	ranker := newOfflineRanker()
	job := testJob()

	first := ranker.RankCandidates(context.Background(), job, testPool())
	second := ranker.RankCandidates(context.Background(), job, testPool())
	assert.Equal(t, first, second)
}

func TestRankCandidates_EmptyPool(t *testing.T) {
	ranker := newOfflineRanker()

	ranked := ranker.RankCandidates(context.Background(), testJob(), nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRankCandidates_StableTieBreak(t *testing.T) {
	ranker := newOfflineRanker()

	// Identical profiles score identically; input order must survive.
	twin := types.CandidateProfile{
		ID:              "twin-a",
		TechnicalSkills: []string{"Python", "SQL"},
	}
	other := twin
	other.ID = "twin-b"

	ranked := ranker.RankCandidates(context.Background(), testJob(), []types.CandidateProfile{twin, other})
	require.Len(t, ranked, 2)
	assert.Equal(t, "twin-a", ranked[0].CandidateID)
	assert.Equal(t, "twin-b", ranked[1].CandidateID)
}

func TestRankCandidates_ProviderFailureStillRanks(t *testing.T) {
	ranker := NewRanker(embedding.NewMatcher(failingProvider{}, nil), nil)
	pool := testPool()

	ranked := ranker.RankCandidates(context.Background(), testJob(), pool)
	require.Len(t, ranked, len(pool))

	// Fallback vectors still discriminate on the non-semantic criteria.
	assert.Equal(t, "cand-strong", ranked[0].CandidateID)
	for _, rc := range ranked {
		assert.Contains(t, rc.ScoreBreakdown.Criteria, types.CriterionSemanticSimilarity)
	}
}

func TestRankCandidates_ActivitiesDoNotSatisfyRequiredSkills(t *testing.T) {
	ranker := newOfflineRanker()
	job := &types.JobRequirement{
		Title:          "Database Engineer",
		RequiredSkills: []string{"sql"},
	}
	pool := []types.CandidateProfile{{
		ID:              "cand-activities",
		TechnicalSkills: []string{"Photoshop"},
		CoCurricular:    []string{"SQL club"},
	}}

	ranked := ranker.RankCandidates(context.Background(), job, pool)
	require.Len(t, ranked, 1)

	// An activity mentioning a required skill is not a declared skill.
	assert.Equal(t, 0.0, ranked[0].ScoreBreakdown.Criteria[types.CriterionSkillMatch])
}

func TestRankCandidates_CriteriaBreakdownComplete(t *testing.T) {
	ranker := newOfflineRanker()

	ranked := ranker.RankCandidates(context.Background(), testJob(), testPool())
	require.NotEmpty(t, ranked)

	wantCriteria := []string{
		types.CriterionSemanticSimilarity,
		types.CriterionSkillMatch,
		types.CriterionExperienceMatch,
		types.CriterionEducationMatch,
		types.CriterionLocationPreference,
		types.CriterionAvailability,
	}
	for _, rc := range ranked {
		require.Len(t, rc.ScoreBreakdown.Criteria, len(wantCriteria))
		for _, name := range wantCriteria {
			score, ok := rc.ScoreBreakdown.Criteria[name]
			require.True(t, ok, "missing criterion %s", name)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
		assert.GreaterOrEqual(t, rc.ScoreBreakdown.OverallScore, 0.0)
		assert.LessOrEqual(t, rc.ScoreBreakdown.OverallScore, 1.0)
	}
}

func TestRankCandidates_PlaceholderOptions(t *testing.T) {
	ranker := newOfflineRanker(WithLocationScore(0.2), WithAvailabilityScore(0.4))

	ranked := ranker.RankCandidates(context.Background(), testJob(), testPool())
	require.NotEmpty(t, ranked)
	assert.Equal(t, 0.2, ranked[0].ScoreBreakdown.Criteria[types.CriterionLocationPreference])
	assert.Equal(t, 0.4, ranked[0].ScoreBreakdown.Criteria[types.CriterionAvailability])
}

func TestFallbackRanking(t *testing.T) {
	pool := testPool()
	ranked := FallbackRanking(pool)
	require.Len(t, ranked, len(pool))

	for i, rc := range ranked {
		assert.Equal(t, pool[i].ID, rc.CandidateID)
		assert.Equal(t, i+1, rc.Rank)
		assert.Equal(t, fallbackScore, rc.ScoreBreakdown.OverallScore)
		assert.Equal(t, []string{"System temporarily unavailable"}, rc.MatchReasons)
		assert.Equal(t, "Manual review recommended", rc.Recommendation)
	}
}

func TestRecommendationLabel(t *testing.T) {
	assert.Equal(t, "Highly Recommended - Excellent match for the position", recommendationLabel(0.85))
	assert.Equal(t, "Recommended - Good fit with minor gaps", recommendationLabel(0.65))
	assert.Equal(t, "Consider - Potential fit with some development needed", recommendationLabel(0.45))
	assert.Equal(t, "Not Recommended - Significant gaps in requirements", recommendationLabel(0.2))
}
