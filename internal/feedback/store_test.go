package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/career-match/internal/types"
)

func validEntry(rating float64, hired bool) *types.FeedbackEntry {
	return &types.FeedbackEntry{
		JobID:          "job-1",
		CandidateID:    "cand-1",
		EmployerRating: rating,
		HireDecision:   hired,
	}
}

func TestMemoryStore_RecordAssignsIDAndTimestamp(t *testing.T) {
	store := NewMemoryStore(nil)
	entry := validEntry(4, false)

	require.NoError(t, store.Record(context.Background(), entry))
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", entry.ID.String())
	assert.False(t, entry.Timestamp.IsZero())
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_RecordRejectsInvalidEntries(t *testing.T) {
	store := NewMemoryStore(nil)

	assert.Error(t, store.Record(context.Background(), &types.FeedbackEntry{
		JobID:          "job-1",
		CandidateID:    "cand-1",
		EmployerRating: 6,
	}))
	assert.Error(t, store.Record(context.Background(), &types.FeedbackEntry{
		CandidateID:    "cand-1",
		EmployerRating: 3,
	}))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_LearningPassAtEveryTenthEntry(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	store := NewMemoryStore(zap.New(core))

	for i := 0; i < 9; i++ {
		require.NoError(t, store.Record(context.Background(), validEntry(5, true)))
	}
	assert.Equal(t, 0, logs.FilterMessage("feedback learning pass").Len())

	require.NoError(t, store.Record(context.Background(), validEntry(1, false)))
	passes := logs.FilterMessage("feedback learning pass").All()
	require.Len(t, passes, 1)

	fields := passes[0].ContextMap()
	assert.Equal(t, int64(10), fields["total_entries"])
	assert.Equal(t, int64(9), fields["positive_entries"])
	assert.InDelta(t, 0.9, fields["positive_ratio"].(float64), 1e-9)
}

func TestMemoryStore_Analytics(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	empty, err := store.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalEntries)
	assert.Equal(t, 0.0, empty.PositiveRate)

	// Ratings 5, 4, 2, 1; one hire among the low ratings.
	require.NoError(t, store.Record(ctx, validEntry(5, true)))
	require.NoError(t, store.Record(ctx, validEntry(4, false)))
	require.NoError(t, store.Record(ctx, validEntry(2, true)))
	require.NoError(t, store.Record(ctx, validEntry(1, false)))

	analytics, err := store.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, analytics.TotalEntries)
	assert.InDelta(t, 0.5, analytics.PositiveRate, 1e-9)
	assert.InDelta(t, 0.5, analytics.HireRate, 1e-9)
	assert.InDelta(t, 3.0, analytics.AverageRating, 1e-9)
	assert.False(t, analytics.LastUpdated.IsZero())
}

func TestMemoryStore_RecordCopiesEntry(t *testing.T) {
	store := NewMemoryStore(nil)
	entry := validEntry(5, false)
	require.NoError(t, store.Record(context.Background(), entry))

	// Mutating the caller's entry does not rewrite the stored copy.
	entry.EmployerRating = 1
	analytics, err := store.Analytics(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 5.0, analytics.AverageRating, 1e-9)
}
