package ai

import "time"

// Default models and limits for the Gemini-backed client. The call budgets
// mirror the free-tier quotas the service is expected to run under.
const (
	DefaultEmbeddingModel  = "text-embedding-004"
	DefaultGenerativeModel = "gemini-1.5-flash"

	DefaultEmbedCallsPerHour    = 100
	DefaultAnalysisCallsPerHour = 20
	DefaultCallTimeout          = 30 * time.Second
)

// Config holds provider configuration for the AI client.
type Config struct {
	EmbeddingModel  string
	GenerativeModel string

	// Outbound call budgets, enforced by a token bucket per call type.
	EmbedCallsPerHour    int
	AnalysisCallsPerHour int

	// CallTimeout bounds every outbound call.
	CallTimeout time.Duration
}

// DefaultConfig returns the default provider configuration.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingModel:       DefaultEmbeddingModel,
		GenerativeModel:      DefaultGenerativeModel,
		EmbedCallsPerHour:    DefaultEmbedCallsPerHour,
		AnalysisCallsPerHour: DefaultAnalysisCallsPerHour,
		CallTimeout:          DefaultCallTimeout,
	}
}

// normalized returns a copy with zero values replaced by defaults.
func (c *Config) normalized() *Config {
	out := *c
	if out.EmbeddingModel == "" {
		out.EmbeddingModel = DefaultEmbeddingModel
	}
	if out.GenerativeModel == "" {
		out.GenerativeModel = DefaultGenerativeModel
	}
	if out.EmbedCallsPerHour <= 0 {
		out.EmbedCallsPerHour = DefaultEmbedCallsPerHour
	}
	if out.AnalysisCallsPerHour <= 0 {
		out.AnalysisCallsPerHour = DefaultAnalysisCallsPerHour
	}
	if out.CallTimeout <= 0 {
		out.CallTimeout = DefaultCallTimeout
	}
	return &out
}
