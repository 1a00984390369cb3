package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-match/internal/types"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record employer feedback for a past match",
	Long:  "Record an employer's rating and hire decision for a previously matched candidate. Feedback feeds the matching analytics.",
	RunE:  runFeedback,
}

var (
	feedbackJobID       string
	feedbackCandidateID string
	feedbackRating      float64
	feedbackHired       bool
	feedbackNotes       string
)

func init() {
	feedbackCmd.Flags().StringVar(&feedbackJobID, "job-id", "", "Job posting ID (required)")
	feedbackCmd.Flags().StringVar(&feedbackCandidateID, "candidate-id", "", "Candidate ID (required)")
	feedbackCmd.Flags().Float64Var(&feedbackRating, "rating", 0, "Employer rating, 1 to 5 (required)")
	feedbackCmd.Flags().BoolVar(&feedbackHired, "hired", false, "Whether the candidate was hired")
	feedbackCmd.Flags().StringVar(&feedbackNotes, "notes", "", "Free-form notes")
	_ = feedbackCmd.MarkFlagRequired("job-id")
	_ = feedbackCmd.MarkFlagRequired("candidate-id")
	_ = feedbackCmd.MarkFlagRequired("rating")

	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("feedback requires a database (set DATABASE_URL or 'database_url' in config)")
	}

	ctx := context.Background()

	store, closeStore, err := newFeedbackStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	entry := &types.FeedbackEntry{
		JobID:          feedbackJobID,
		CandidateID:    feedbackCandidateID,
		EmployerRating: feedbackRating,
		HireDecision:   feedbackHired,
		Notes:          feedbackNotes,
	}
	if err := store.Record(ctx, entry); err != nil {
		return err
	}

	return writeJSONOutput("", map[string]any{
		"id":       entry.ID,
		"recorded": true,
	})
}
