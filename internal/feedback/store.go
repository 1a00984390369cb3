// Package feedback stores employer feedback on past matches and aggregates
// it into matching analytics.
package feedback

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/career-match/internal/types"
)

// learningPassInterval is the entry count between learning passes.
const learningPassInterval = 10

// Store is the feedback persistence boundary.
type Store interface {
	// Record appends one validated feedback entry.
	Record(ctx context.Context, entry *types.FeedbackEntry) error
	// Analytics aggregates every recorded entry.
	Analytics(ctx context.Context) (*types.MatchingAnalytics, error)
}

// MemoryStore is the in-process Store. Entries are append-only.
type MemoryStore struct {
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	entries []types.FeedbackEntry
}

// NewMemoryStore creates an empty in-memory feedback store.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{logger: logger, now: time.Now}
}

// Record validates and appends a feedback entry, assigning an ID and
// timestamp when absent. Every tenth entry triggers a learning pass.
func (s *MemoryStore) Record(ctx context.Context, entry *types.FeedbackEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	stored := *entry
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.Timestamp.IsZero() {
		stored.Timestamp = s.now()
	}

	s.mu.Lock()
	s.entries = append(s.entries, stored)
	total := len(s.entries)
	var snapshot []types.FeedbackEntry
	if total%learningPassInterval == 0 {
		snapshot = make([]types.FeedbackEntry, total)
		copy(snapshot, s.entries)
	}
	s.mu.Unlock()

	entry.ID = stored.ID
	entry.Timestamp = stored.Timestamp

	if snapshot != nil {
		s.learningPass(snapshot)
	}
	return nil
}

// learningPass partitions the recorded entries into positive and negative
// outcomes and logs the ratio. It observes matching quality; it never feeds
// back into the ranking weights.
func (s *MemoryStore) learningPass(entries []types.FeedbackEntry) {
	positive := 0
	for i := range entries {
		if entries[i].Positive() {
			positive++
		}
	}

	s.logger.Info("feedback learning pass",
		zap.Int("total_entries", len(entries)),
		zap.Int("positive_entries", positive),
		zap.Float64("positive_ratio", float64(positive)/float64(len(entries))),
	)
}

// Analytics aggregates all recorded feedback.
func (s *MemoryStore) Analytics(ctx context.Context) (*types.MatchingAnalytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analytics := &types.MatchingAnalytics{
		TotalEntries: len(s.entries),
		LastUpdated:  s.now(),
	}
	if len(s.entries) == 0 {
		return analytics, nil
	}

	positive, hires := 0, 0
	ratingSum := 0.0
	for i := range s.entries {
		entry := &s.entries[i]
		if entry.EmployerRating >= 4 {
			positive++
		}
		if entry.HireDecision {
			hires++
		}
		ratingSum += entry.EmployerRating
	}

	total := float64(len(s.entries))
	analytics.PositiveRate = float64(positive) / total
	analytics.HireRate = float64(hires) / total
	analytics.AverageRating = ratingSum / total
	return analytics, nil
}

// Len returns the number of recorded entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
