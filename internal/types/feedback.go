package types

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackEntry records one employer outcome for a ranked candidate.
// Entries are append-only; they are never updated or deleted by the core.
type FeedbackEntry struct {
	ID             uuid.UUID `json:"id"`
	JobID          string    `json:"job_id" validate:"required,min=1"`
	CandidateID    string    `json:"candidate_id" validate:"required,min=1"`
	EmployerRating float64   `json:"employer_rating" validate:"gte=1,lte=5"`
	HireDecision   bool      `json:"hire_decision"`
	Notes          string    `json:"notes,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Validate checks the FeedbackEntry shape before it is recorded.
func (f *FeedbackEntry) Validate() error {
	return validate.Struct(f)
}

// Positive reports whether the entry counts as a positive outcome for the
// learning pass: a rating of 4+ or an actual hire.
func (f *FeedbackEntry) Positive() bool {
	return f.EmployerRating >= 4 || f.HireDecision
}

// MatchingAnalytics aggregates recorded feedback into matching-quality
// statistics.
type MatchingAnalytics struct {
	TotalEntries  int       `json:"total_feedback_entries"`
	PositiveRate  float64   `json:"positive_feedback_rate"`
	HireRate      float64   `json:"hire_rate"`
	AverageRating float64   `json:"average_employer_rating"`
	LastUpdated   time.Time `json:"last_updated"`
}
