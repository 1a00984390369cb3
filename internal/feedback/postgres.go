package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jonathan/career-match/internal/types"
)

// PostgresStore is the PostgreSQL-backed Store.
//
// Expected table:
//
//	CREATE TABLE match_feedback (
//	    id UUID PRIMARY KEY,
//	    job_id TEXT NOT NULL,
//	    candidate_id TEXT NOT NULL,
//	    employer_rating DOUBLE PRECISION NOT NULL,
//	    hire_decision BOOLEAN NOT NULL,
//	    notes TEXT,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string, logger *zap.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool, logger: logger}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Record validates and inserts a feedback entry.
func (s *PostgresStore) Record(ctx context.Context, entry *types.FeedbackEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO match_feedback (id, job_id, candidate_id, employer_rating, hire_decision, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.JobID, entry.CandidateID, entry.EmployerRating, entry.HireDecision, entry.Notes, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to record feedback: %w", err)
	}

	s.logger.Debug("feedback recorded",
		zap.String("job_id", entry.JobID),
		zap.String("candidate_id", entry.CandidateID),
	)
	return nil
}

// Analytics aggregates all recorded feedback with a single query.
func (s *PostgresStore) Analytics(ctx context.Context) (*types.MatchingAnalytics, error) {
	analytics := &types.MatchingAnalytics{LastUpdated: time.Now()}

	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(CASE WHEN employer_rating >= 4 THEN 1.0 ELSE 0.0 END), 0),
		        COALESCE(AVG(CASE WHEN hire_decision THEN 1.0 ELSE 0.0 END), 0),
		        COALESCE(AVG(employer_rating), 0)
		 FROM match_feedback`,
	).Scan(&analytics.TotalEntries, &analytics.PositiveRate, &analytics.HireRate, &analytics.AverageRating)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate feedback: %w", err)
	}

	return analytics, nil
}
