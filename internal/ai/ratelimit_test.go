package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is an adjustable clock for deterministic limiter tests.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func TestTokenBucket_ExhaustsCapacity(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	bucket := newTokenBucketAt(3, time.Hour, clock.now)

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.TryAcquire(), "call %d should be allowed", i+1)
	}
	assert.False(t, bucket.TryAcquire(), "fourth call should be rejected")
}

func TestTokenBucket_RefillsOverTime(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	bucket := newTokenBucketAt(2, time.Hour, clock.now)

	require.True(t, bucket.TryAcquire())
	require.True(t, bucket.TryAcquire())
	require.False(t, bucket.TryAcquire())

	// Half the window refills one of two tokens.
	clock.advance(30 * time.Minute)
	assert.True(t, bucket.TryAcquire())
	assert.False(t, bucket.TryAcquire())
}

func TestTokenBucket_NeverExceedsCapacity(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	bucket := newTokenBucketAt(2, time.Minute, clock.now)

	clock.advance(24 * time.Hour)
	assert.Equal(t, 2, bucket.Remaining())
}
