// Package matching exposes the job-candidate matching service that ties the
// ranker and the feedback store together.
package matching

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/career-match/internal/feedback"
	"github.com/jonathan/career-match/internal/ranking"
	"github.com/jonathan/career-match/internal/types"
)

const (
	// DefaultMaxCandidates caps the shortlist when the caller does not.
	DefaultMaxCandidates = 10

	// summaryThreshold is the overall score above which a candidate counts
	// as a solid match in the summary.
	summaryThreshold = 0.6
)

// Service matches candidate pools against job postings and records the
// resulting hiring outcomes.
type Service struct {
	ranker *ranking.Ranker
	store  feedback.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a matching service.
func NewService(ranker *ranking.Ranker, store feedback.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		ranker: ranker,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// FindMatchingCandidates ranks the pool against the job and builds the match
// report with a shortlist of at most maxCandidates. Invalid input shape is
// the only error path; scoring failures degrade inside the ranker.
func (s *Service) FindMatchingCandidates(ctx context.Context, job *types.JobRequirement, pool []types.CandidateProfile, maxCandidates int) (*types.MatchReport, error) {
	if job == nil {
		return nil, fmt.Errorf("job posting is required")
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job posting: %w", err)
	}
	for i := range pool {
		if err := pool[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid candidate at index %d: %w", i, err)
		}
	}
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	s.logger.Info("matching candidates",
		zap.String("job_title", job.Title),
		zap.Int("pool_size", len(pool)),
		zap.Int("max_candidates", maxCandidates),
	)

	ranked := s.ranker.RankCandidates(ctx, job, pool)

	shortlist := ranked
	if len(shortlist) > maxCandidates {
		shortlist = shortlist[:maxCandidates]
	}

	return &types.MatchReport{
		JobID:                    job.ID,
		JobTitle:                 job.Title,
		TotalCandidatesEvaluated: len(pool),
		ShortlistedCandidates:    len(shortlist),
		TopCandidates:            shortlist,
		MatchingSummary:          matchingSummary(ranked),
		GeneratedAt:              s.now(),
	}, nil
}

// RecordEmployerFeedback stores one employer outcome for a past match.
func (s *Service) RecordEmployerFeedback(ctx context.Context, entry *types.FeedbackEntry) error {
	if s.store == nil {
		return fmt.Errorf("feedback store is not configured")
	}
	return s.store.Record(ctx, entry)
}

// MatchingAnalytics aggregates the recorded feedback.
func (s *Service) MatchingAnalytics(ctx context.Context) (*types.MatchingAnalytics, error) {
	if s.store == nil {
		return nil, fmt.Errorf("feedback store is not configured")
	}
	return s.store.Analytics(ctx)
}

// matchingSummary aggregates a full ranked list into summary statistics.
func matchingSummary(ranked []types.RankedCandidate) types.MatchingSummary {
	if len(ranked) == 0 {
		return types.MatchingSummary{}
	}

	var summary types.MatchingSummary
	var sum float64
	for _, rc := range ranked {
		score := rc.ScoreBreakdown.OverallScore
		sum += score
		if score > summary.HighestMatchScore {
			summary.HighestMatchScore = score
		}
		if score >= summaryThreshold {
			summary.CandidatesAboveThreshold++
		}

		switch {
		case score >= 0.8:
			summary.ScoreDistribution.Excellent++
		case score >= 0.6:
			summary.ScoreDistribution.Good++
		case score >= 0.4:
			summary.ScoreDistribution.Fair++
		default:
			summary.ScoreDistribution.Poor++
		}
	}
	summary.AverageMatchScore = sum / float64(len(ranked))
	return summary
}
