package ai

import (
	"errors"
	"sync"
	"time"
)

// ErrRateLimited is returned when the call budget for the provider is
// exhausted. Callers treat it exactly like any other transient provider
// failure and route to their fallback path.
var ErrRateLimited = errors.New("ai: rate limit exceeded")

// TokenBucket is a token-bucket rate limiter with an injectable clock.
// It never blocks: TryAcquire reports whether a call may proceed right now.
type TokenBucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a full bucket allowing capacity calls per window.
func NewTokenBucket(capacity int, window time.Duration) *TokenBucket {
	return newTokenBucketAt(capacity, window, time.Now)
}

func newTokenBucketAt(capacity int, window time.Duration, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		refillRate: float64(capacity) / window.Seconds(),
		tokens:     float64(capacity),
		lastRefill: now(),
		now:        now,
	}
}

// TryAcquire consumes one token if available and reports whether it did.
func (tb *TokenBucket) TryAcquire() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Remaining returns the number of whole tokens currently available.
func (tb *TokenBucket) Remaining() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	return int(tb.tokens)
}

// refill tops up tokens based on elapsed time. Caller must hold the mutex.
func (tb *TokenBucket) refill() {
	now := tb.now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(tb.capacity, tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
}
