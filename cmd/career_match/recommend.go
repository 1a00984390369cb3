package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-match/internal/careers"
	"github.com/jonathan/career-match/internal/observability"
	"github.com/jonathan/career-match/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate career recommendations for a candidate profile",
	Long:  "Generate a career recommendation report for a candidate profile by combining rule-based matching against the career table with AI profile analysis.",
	RunE:  runRecommend,
}

var (
	recommendProfileFile string
	recommendOutputFile  string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfileFile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = recommendCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var profile types.CandidateProfile
	if err := readJSONFile(recommendProfileFile, &profile); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid candidate profile: %w", err)
	}

	ctx := context.Background()

	client, err := newAIClient(ctx, cfg, log)
	if err != nil {
		return err
	}

	var engine *careers.Engine
	if client != nil {
		defer func() { _ = client.Close() }()
		engine = careers.NewEngine(client, log)
	} else {
		engine = careers.NewEngine(nil, log)
	}

	report := engine.GenerateRecommendations(ctx, &profile)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRecommendationReport(report)
	}

	return writeJSONOutput(recommendOutputFile, report)
}
