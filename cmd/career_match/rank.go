package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-match/internal/matching"
	"github.com/jonathan/career-match/internal/observability"
	"github.com/jonathan/career-match/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a candidate pool against a job posting",
	Long:  "Rank a candidate pool against a job posting using semantic similarity and multi-criteria weighted scoring, producing a match report with a shortlist.",
	RunE:  runRank,
}

var (
	rankJobFile        string
	rankCandidatesFile string
	rankOutputFile     string
	rankMaxCandidates  int
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to job posting JSON file (required)")
	rankCmd.Flags().StringVarP(&rankCandidatesFile, "candidates", "c", "", "Path to candidate pool JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankCmd.Flags().IntVar(&rankMaxCandidates, "max", 0, "Maximum candidates to shortlist (default from config)")
	_ = rankCmd.MarkFlagRequired("job")
	_ = rankCmd.MarkFlagRequired("candidates")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var job types.JobRequirement
	if err := readJSONFile(rankJobFile, &job); err != nil {
		return err
	}
	var pool []types.CandidateProfile
	if err := readJSONFile(rankCandidatesFile, &pool); err != nil {
		return err
	}

	ctx := context.Background()

	client, err := newAIClient(ctx, cfg, log)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	store, closeStore, err := newFeedbackStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	ranker := newRanker(newMatcher(client, log), cfg, log)
	service := matching.NewService(ranker, store, log)

	maxCandidates := rankMaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = cfg.MaxCandidates
	}

	report, err := service.FindMatchingCandidates(ctx, &job, pool, maxCandidates)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatchReport(report)
	}

	return writeJSONOutput(rankOutputFile, report)
}
