// Package main provides the career-match CLI: candidate ranking, career
// recommendations and employer feedback analytics.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_match",
	Short: "Job-candidate matching and career recommendation engine",
	Long:  "career_match ranks candidate pools against job postings with semantic and multi-criteria scoring, recommends careers for candidate profiles, and tracks employer feedback on past matches.",
}

var (
	flagConfig   string
	flagAPIKey   string
	flagVerbose  bool
	flagJSONLogs bool
	flagDebug    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print formatted report boxes to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit JSON-encoded logs")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
