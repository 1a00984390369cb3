// Package embedding provides text embeddings with caching, a deterministic
// offline fallback, and cosine-similarity computation.
package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Provider is the outbound embedding call. Satisfied by ai.Client.
type Provider interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// Embedding is a numeric vector tagged with the hash of its source text.
// Degraded marks vectors produced by the offline fallback.
type Embedding struct {
	Values   []float64 `json:"values"`
	TextHash string    `json:"text_hash"`
	Degraded bool      `json:"degraded"`
}

// Matcher owns the embedding cache and the fallback path. TextEmbedding
// never fails: when the provider is absent or errors, the deterministic
// fallback supplies the vector.
type Matcher struct {
	provider Provider
	logger   *zap.Logger

	mu    sync.RWMutex
	cache map[string]Embedding
	group singleflight.Group
}

// NewMatcher creates a Matcher. provider may be nil, in which case every
// embedding comes from the fallback.
func NewMatcher(provider Provider, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		provider: provider,
		logger:   logger,
		cache:    make(map[string]Embedding),
	}
}

// TextEmbedding returns the embedding for a text, consulting the cache
// first. Cache keys are the exact text, not a normalization of it.
// Concurrent calls for the same text share a single provider call.
func (m *Matcher) TextEmbedding(ctx context.Context, text string) Embedding {
	m.mu.RLock()
	cached, ok := m.cache[text]
	m.mu.RUnlock()
	if ok {
		return cached
	}

	result, _, _ := m.group.Do(text, func() (any, error) {
		emb := m.fetch(ctx, text)
		m.mu.Lock()
		m.cache[text] = emb
		m.mu.Unlock()
		return emb, nil
	})

	return result.(Embedding)
}

// fetch calls the provider and falls back to the deterministic embedding on
// any failure. This is the last line of defense; it always returns a usable
// vector.
func (m *Matcher) fetch(ctx context.Context, text string) Embedding {
	hash := hashText(text)

	if m.provider != nil {
		values, err := m.provider.EmbedText(ctx, text)
		if err == nil && len(values) > 0 {
			return Embedding{Values: values, TextHash: hash}
		}
		if err != nil {
			m.logger.Warn("embedding provider failed, using fallback",
				zap.String("text_hash", hash),
				zap.Error(err),
			)
		}
	}

	return Embedding{Values: FallbackEmbedding(text), TextHash: hash, Degraded: true}
}

// ResetCache drops every cached embedding.
func (m *Matcher) ResetCache() {
	m.mu.Lock()
	m.cache = make(map[string]Embedding)
	m.mu.Unlock()
}

// CacheSize returns the number of cached embeddings.
func (m *Matcher) CacheSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// Similarity computes the clamped cosine similarity of two embeddings.
func (m *Matcher) Similarity(a, b Embedding) float64 {
	return CosineSimilarity(a.Values, b.Values)
}

// CosineSimilarity computes dot(a,b)/(|a||b|) over the shorter of the two
// vectors, clamped to [0,1]. Negative correlation between two short texts
// carries no meaning in this domain, so negative cosine maps to 0. A zero
// vector yields 0.0, not an error.
func CosineSimilarity(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0.0
	}

	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0.0
	}

	similarity := dot / (math.Sqrt(magA) * math.Sqrt(magB))
	return math.Max(0.0, math.Min(1.0, similarity))
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
