// Package ai wraps the external embedding and profile-analysis provider.
// Every outbound call is rate limited and bounded by a timeout; any failure
// surfaces as an error the caller recovers from locally.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/jonathan/career-match/internal/types"
)

// Client is the abstraction over the embedding / profile-analysis provider.
type Client interface {
	// EmbedText returns the provider embedding vector for a text.
	EmbedText(ctx context.Context, text string) ([]float64, error)
	// AnalyzeProfile returns the provider's career analysis of a candidate.
	AnalyzeProfile(ctx context.Context, profile *types.CandidateProfile) (*types.ProfileAnalysis, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client on Google Gemini.
type GeminiClient struct {
	client          *genai.Client
	config          *Config
	embedLimiter    *TokenBucket
	analysisLimiter *TokenBucket
	logger          *zap.Logger
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}
	config = config.normalized()

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:          client,
		config:          config,
		embedLimiter:    NewTokenBucket(config.EmbedCallsPerHour, time.Hour),
		analysisLimiter: NewTokenBucket(config.AnalysisCallsPerHour, time.Hour),
		logger:          logger,
	}, nil
}

// EmbedText returns the embedding vector for a text.
func (c *GeminiClient) EmbedText(ctx context.Context, text string) ([]float64, error) {
	if !c.embedLimiter.TryAcquire() {
		return nil, ErrRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
	defer cancel()

	model := c.client.EmbeddingModel(c.config.EmbeddingModel)
	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}

	values := make([]float64, len(resp.Embedding.Values))
	for i, v := range resp.Embedding.Values {
		values[i] = float64(v)
	}
	return values, nil
}

// AnalyzeProfile asks the generative model for career recommendations and
// validates the JSON reply against the expected schema.
func (c *GeminiClient) AnalyzeProfile(ctx context.Context, profile *types.CandidateProfile) (*types.ProfileAnalysis, error) {
	if !c.analysisLimiter.TryAcquire() {
		return nil, ErrRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
	defer cancel()

	model := c.client.GenerativeModel(c.config.GenerativeModel)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	prompt := buildAnalysisPrompt(profile)
	c.logger.Debug("profile analysis request",
		zap.String("candidate_id", profile.ID),
		zap.Int("prompt_length", len(prompt)),
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return parseAnalysisResponse(cleanJSONBlock(raw))
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// buildAnalysisPrompt builds the profile-analysis prompt from the labeled
// profile text representation.
func buildAnalysisPrompt(profile *types.CandidateProfile) string {
	return fmt.Sprintf(`You are a career counselor. Analyze the following student profile and suggest suitable careers.

Profile: %s

Respond with JSON only, in this shape:
{"career_recommendations": [{"career": "...", "confidence": 0.0, "reason": "..."}], "summary": "..."}

Confidence must be a number between 0 and 1. Suggest at most 5 careers.`, profile.MatchText())
}

// parseAnalysisResponse validates and decodes an analysis document.
func parseAnalysisResponse(document string) (*types.ProfileAnalysis, error) {
	if err := validateAnalysisJSON(document); err != nil {
		return nil, err
	}

	var analysis types.ProfileAnalysis
	if err := json.Unmarshal([]byte(document), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}

	for i := range analysis.CareerRecommendations {
		rec := &analysis.CareerRecommendations[i]
		rec.Source = types.SourceAIOnly
		rec.Confidence = clamp01(rec.Confidence)
		if rec.Reason == "" {
			rec.Reason = "AI-powered analysis"
		}
	}
	if len(analysis.CareerRecommendations) > 0 {
		analysis.ConfidenceScore = 0.7
	}
	return &analysis, nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
