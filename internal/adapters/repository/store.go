// Package repository defines the quiz result store interface and its
// in-memory and Redis implementations.
package repository

import (
	"context"

	"github.com/ethoslab/archetype/internal/domain/types"
)

// Store provides read/write access to persisted quiz results.
type Store interface {
	// Save upserts a result by session ID. A repeated session overwrites
	// its earlier result but keeps its original position in arrival order.
	Save(ctx context.Context, record types.ResultRecord) error

	// AttachEmail sets the email on an existing session's result.
	// Returns ErrNotFound when the session is unknown.
	AttachEmail(ctx context.Context, sessionID, email string) error

	// Get returns the result stored for a session.
	// Returns ErrNotFound when the session is unknown.
	Get(ctx context.Context, sessionID string) (types.ResultRecord, error)

	// TotalSessions returns the number of distinct sessions recorded.
	TotalSessions(ctx context.Context) (int, error)

	// SessionNumber returns the 1-based chronological position of a
	// session among all recorded sessions.
	// Returns ErrNotFound when the session is unknown.
	SessionNumber(ctx context.Context, sessionID string) (int, error)

	// CohortStats aggregates the archetype distribution for a cohort.
	// Percentages are rounded to one decimal place and computed against
	// the cohort's distinct participant count.
	CohortStats(ctx context.Context, cohortID string) (types.CohortStats, error)

	// Count returns the number of distinct sessions without error
	// reporting, for metrics sampling.
	Count(ctx context.Context) int
}
