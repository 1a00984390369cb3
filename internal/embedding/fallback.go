package embedding

import "strings"

// FallbackDimensions is the fixed length of fallback vectors.
const FallbackDimensions = 384

// fallbackKeywords are the domain terms encoded as presence flags in the
// fallback vector. The list is fixed: changing it changes every fallback
// embedding, so vectors from different processes would stop agreeing.
var fallbackKeywords = []string{
	"python", "java", "javascript", "react", "angular", "node",
	"sql", "database", "api", "web", "mobile", "cloud", "ai",
	"machine learning", "data", "analytics", "software", "development",
}

// FallbackEmbedding derives a deterministic vector from surface features of
// the text: normalized word and character counts followed by 0/1 keyword
// presence flags, repeated cyclically to the fixed dimension. It is
// collision-prone by design; a degraded-mode signal, not a semantic
// embedding.
func FallbackEmbedding(text string) []float64 {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	features := make([]float64, 0, FallbackDimensions)
	features = append(features, float64(len(words))/100.0)
	features = append(features, float64(len(text))/1000.0)

	for _, keyword := range fallbackKeywords {
		if strings.Contains(lower, keyword) {
			features = append(features, 1.0)
		} else {
			features = append(features, 0.0)
		}
	}

	// Repeat the base features cyclically until the vector is full.
	for len(features) < FallbackDimensions {
		n := min(len(features), FallbackDimensions-len(features))
		features = append(features, features[:n]...)
	}

	return features[:FallbackDimensions]
}
