package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/career-match/internal/ai"
	"github.com/jonathan/career-match/internal/config"
	"github.com/jonathan/career-match/internal/embedding"
	"github.com/jonathan/career-match/internal/feedback"
	"github.com/jonathan/career-match/internal/logger"
	"github.com/jonathan/career-match/internal/matching"
	"github.com/jonathan/career-match/internal/ranking"
)

// defaultConfig holds the built-in defaults applied under file and flag
// values.
func defaultConfig() config.Config {
	aiDefaults := ai.DefaultConfig()
	return config.Config{
		EmbeddingModel:    aiDefaults.EmbeddingModel,
		GenerativeModel:   aiDefaults.GenerativeModel,
		MaxCandidates:     matching.DefaultMaxCandidates,
		LocationScore:     0.8,
		AvailabilityScore: 0.9,
	}
}

// resolveConfig merges the optional config file with flags and defaults.
// Precedence: flags > config file > built-in defaults.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{}

	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(defaultConfig())

	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if flagJSONLogs {
		cfg.JSONLogs = true
	}
	if flagDebug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Debug)
}

// newAIClient builds the Gemini client when an API key is configured. A nil
// client keeps matching fully offline on the fallback embedder.
func newAIClient(ctx context.Context, cfg config.Config, log *zap.Logger) (ai.Client, error) {
	if cfg.APIKey == "" {
		log.Warn("no API key configured, running with offline fallback only")
		return nil, nil
	}

	aiCfg := ai.DefaultConfig()
	aiCfg.EmbeddingModel = cfg.EmbeddingModel
	aiCfg.GenerativeModel = cfg.GenerativeModel

	client, err := ai.NewGeminiClient(ctx, aiCfg, cfg.APIKey, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return client, nil
}

// newMatcher builds the embedding matcher on top of the optional AI client.
func newMatcher(client ai.Client, log *zap.Logger) *embedding.Matcher {
	if client == nil {
		return embedding.NewMatcher(nil, log)
	}
	return embedding.NewMatcher(client, log)
}

// newRanker builds the candidate ranker from config.
func newRanker(matcher *embedding.Matcher, cfg config.Config, log *zap.Logger) *ranking.Ranker {
	return ranking.NewRanker(matcher, log,
		ranking.WithLocationScore(cfg.LocationScore),
		ranking.WithAvailabilityScore(cfg.AvailabilityScore),
	)
}

// newFeedbackStore selects the PostgreSQL store when a database URL is
// configured and the in-memory store otherwise. The returned func closes the
// store.
func newFeedbackStore(ctx context.Context, cfg config.Config, log *zap.Logger) (feedback.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return feedback.NewMemoryStore(log), func() {}, nil
	}

	store, err := feedback.ConnectPostgres(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

// readJSONFile decodes a JSON file into v.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeJSONOutput writes v as indented JSON to the output file, or stdout
// when path is empty.
func writeJSONOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
