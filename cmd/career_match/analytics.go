package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-match/internal/observability"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show matching analytics aggregated from employer feedback",
	RunE:  runAnalytics,
}

var analyticsOutputFile string

func init() {
	analyticsCmd.Flags().StringVarP(&analyticsOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(_ *cobra.Command, _ []string) error {
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
		return fmt.Errorf("analytics requires a database (set DATABASE_URL or 'database_url' in config)")
	}

	ctx := context.Background()

	store, closeStore, err := newFeedbackStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	analytics, err := store.Analytics(ctx)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintAnalytics(analytics)
	}

	return writeJSONOutput(analyticsOutputFile, analytics)
}
