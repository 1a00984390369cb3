// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Credentials and endpoints
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for feedback storage

	// Models
	EmbeddingModel  string `json:"embedding_model,omitempty"`  // Embedding model name
	GenerativeModel string `json:"generative_model,omitempty"` // Generative model name for profile analysis

	// Matching behavior
	MaxCandidates     int     `json:"max_candidates,omitempty"`     // Shortlist size cap
	LocationScore     float64 `json:"location_score,omitempty"`     // Location-preference placeholder score (0.0-1.0)
	AvailabilityScore float64 `json:"availability_score,omitempty"` // Availability placeholder score (0.0-1.0)

	// Output
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed report boxes
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON-encoded logs
	Debug    bool `json:"debug,omitempty"`     // Lower log level to debug
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxCandidates < 0 {
		return fmt.Errorf("config error: 'max_candidates' must be non-negative")
	}
	if c.LocationScore < 0 || c.LocationScore > 1 {
		return fmt.Errorf("config error: 'location_score' must be between 0.0 and 1.0")
	}
	if c.AvailabilityScore < 0 || c.AvailabilityScore > 1 {
		return fmt.Errorf("config error: 'availability_score' must be between 0.0 and 1.0")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.GenerativeModel == "" {
		result.GenerativeModel = defaults.GenerativeModel
	}

	// Int fields: use default if zero
	if result.MaxCandidates == 0 {
		result.MaxCandidates = defaults.MaxCandidates
	}

	// Float fields: zero means unset
	if result.LocationScore == 0 {
		result.LocationScore = defaults.LocationScore
	}
	if result.AvailabilityScore == 0 {
		result.AvailabilityScore = defaults.AvailabilityScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
