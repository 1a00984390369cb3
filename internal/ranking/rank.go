package ranking

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/career-match/internal/embedding"
	"github.com/jonathan/career-match/internal/types"
)

// Thresholds for generating match reasons and recommendation labels.
const (
	semanticReasonThreshold = 0.7
	skillReasonThreshold    = 0.6

	highlyRecommendedThreshold = 0.8
	recommendedThreshold       = 0.6
	considerThreshold          = 0.4
)

// Placeholder scores for criteria with no richer signal yet. They are
// non-discriminating: every candidate in a pool receives the same value.
const (
	defaultLocationScore     = 0.8
	defaultAvailabilityScore = 0.9
)

// fallbackScore is the uniform score used when the ranking pipeline
// degrades.
const fallbackScore = 0.5

// Ranker scores a candidate pool against one job posting.
type Ranker struct {
	matcher           *embedding.Matcher
	logger            *zap.Logger
	locationScore     float64
	availabilityScore float64
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithLocationScore overrides the placeholder location-preference score.
func WithLocationScore(score float64) Option {
	return func(r *Ranker) { r.locationScore = clamp01(score) }
}

// WithAvailabilityScore overrides the placeholder availability score.
func WithAvailabilityScore(score float64) Option {
	return func(r *Ranker) { r.availabilityScore = clamp01(score) }
}

// NewRanker creates a Ranker on top of a semantic matcher.
func NewRanker(matcher *embedding.Matcher, logger *zap.Logger, opts ...Option) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Ranker{
		matcher:           matcher,
		logger:            logger,
		locationScore:     defaultLocationScore,
		availabilityScore: defaultAvailabilityScore,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RankCandidates scores every candidate against the job and returns the pool
// sorted by overall score descending, ties broken by input order. The result
// always has the same length as the pool: if scoring fails mid-pool, the
// whole call degrades to a uniform fallback ranking instead of returning a
// partial list.
func (r *Ranker) RankCandidates(ctx context.Context, job *types.JobRequirement, pool []types.CandidateProfile) (ranked []types.RankedCandidate) {
	if len(pool) == 0 {
		return []types.RankedCandidate{}
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("ranking pipeline degraded to uniform fallback",
				zap.String("job_title", job.Title),
				zap.Any("panic", rec),
			)
			ranked = FallbackRanking(pool)
		}
	}()

	jobEmbedding := r.matcher.TextEmbedding(ctx, job.MatchText())

	ranked = make([]types.RankedCandidate, 0, len(pool))
	for i := range pool {
		candidate := &pool[i]
		breakdown, reasons := r.scoreCandidate(ctx, job, candidate, jobEmbedding)

		ranked = append(ranked, types.RankedCandidate{
			CandidateID:    candidate.ID,
			ScoreBreakdown: breakdown,
			MatchReasons:   reasons,
			Recommendation: recommendationLabel(breakdown.OverallScore),
		})
	}

	// Stable sort keeps input order on equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ScoreBreakdown.OverallScore > ranked[j].ScoreBreakdown.OverallScore
	})

	assignPositions(ranked)
	return ranked
}

// scoreCandidate computes the six criterion scores and their weighted sum.
func (r *Ranker) scoreCandidate(ctx context.Context, job *types.JobRequirement, candidate *types.CandidateProfile, jobEmbedding embedding.Embedding) (types.ScoreBreakdown, []string) {
	candidateEmbedding := r.matcher.TextEmbedding(ctx, candidate.MatchText())
	semanticScore := r.matcher.Similarity(jobEmbedding, candidateEmbedding)

	skillScore := skillMatchScore(job.RequiredSkills, candidate.DeclaredSkills())
	experienceScore := experienceMatchScore(job.ExperienceLevel, candidate)
	educationScore := educationMatchScore(job.Description, candidate.AcademicRecord)

	criteria := map[string]float64{
		types.CriterionSemanticSimilarity: semanticScore,
		types.CriterionSkillMatch:         skillScore,
		types.CriterionExperienceMatch:    experienceScore,
		types.CriterionEducationMatch:     educationScore,
		types.CriterionLocationPreference: r.locationScore,
		types.CriterionAvailability:       r.availabilityScore,
	}

	overall := semanticScore*semanticSimilarityWeight +
		skillScore*skillMatchWeight +
		experienceScore*experienceMatchWeight +
		educationScore*educationMatchWeight +
		r.locationScore*locationPreferenceWeight +
		r.availabilityScore*availabilityWeight

	var reasons []string
	if semanticScore > semanticReasonThreshold {
		reasons = append(reasons, fmt.Sprintf("Strong profile match (%.2f)", semanticScore))
	}
	if skillScore > skillReasonThreshold {
		reasons = append(reasons, fmt.Sprintf("Good skill alignment (%.2f)", skillScore))
	}

	return types.ScoreBreakdown{
		Criteria:     criteria,
		OverallScore: clamp01(overall),
	}, reasons
}

// recommendationLabel maps an overall score to a hiring recommendation.
func recommendationLabel(overallScore float64) string {
	switch {
	case overallScore >= highlyRecommendedThreshold:
		return "Highly Recommended - Excellent match for the position"
	case overallScore >= recommendedThreshold:
		return "Recommended - Good fit with minor gaps"
	case overallScore >= considerThreshold:
		return "Consider - Potential fit with some development needed"
	default:
		return "Not Recommended - Significant gaps in requirements"
	}
}

// FallbackRanking returns a same-length, input-ordered list with uniform
// scores for when the ranking pipeline is unavailable.
func FallbackRanking(pool []types.CandidateProfile) []types.RankedCandidate {
	ranked := make([]types.RankedCandidate, 0, len(pool))
	for i := range pool {
		ranked = append(ranked, types.RankedCandidate{
			CandidateID: pool[i].ID,
			ScoreBreakdown: types.ScoreBreakdown{
				Criteria:     map[string]float64{"fallback": fallbackScore},
				OverallScore: fallbackScore,
			},
			MatchReasons:   []string{"System temporarily unavailable"},
			Recommendation: "Manual review recommended",
		})
	}
	assignPositions(ranked)
	return ranked
}

// assignPositions sets 1-based ranks and percentiles on a sorted list.
func assignPositions(ranked []types.RankedCandidate) {
	total := len(ranked)
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Percentile = float64(total-i) / float64(total) * 100
	}
}
