package repository

import (
	"context"
	"math"
	"sync"

	"github.com/ethoslab/archetype/internal/domain/catalog"
	"github.com/ethoslab/archetype/internal/domain/types"
)

// MemoryStore implements Store with process-local state. Arrival order is
// kept in a slice so session numbers stay stable across upserts.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]types.ResultRecord
	order   []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]types.ResultRecord),
	}
}

// Save upserts a result by session ID.
func (s *MemoryStore) Save(ctx context.Context, record types.ResultRecord) error {
	if record.SessionID == "" {
		return ErrInvalidRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.SessionID]; !exists {
		s.order = append(s.order, record.SessionID)
	}
	record.Traits = append([]string(nil), record.Traits...)
	s.records[record.SessionID] = record
	return nil
}

// AttachEmail sets the email on an existing result.
func (s *MemoryStore) AttachEmail(ctx context.Context, sessionID, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[sessionID]
	if !ok {
		return ErrNotFound
	}
	rec.Email = email
	s.records[sessionID] = rec
	return nil
}

// Get returns the stored result for a session.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (types.ResultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[sessionID]
	if !ok {
		return types.ResultRecord{}, ErrNotFound
	}
	rec.Traits = append([]string(nil), rec.Traits...)
	return rec, nil
}

// TotalSessions returns the number of distinct sessions recorded.
func (s *MemoryStore) TotalSessions(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

// SessionNumber returns the 1-based arrival position of a session.
func (s *MemoryStore) SessionNumber(ctx context.Context, sessionID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, id := range s.order {
		if id == sessionID {
			return i + 1, nil
		}
	}
	return 0, ErrNotFound
}

// CohortStats aggregates the archetype distribution for a cohort.
func (s *MemoryStore) CohortStats(ctx context.Context, cohortID string) (types.CohortStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[types.Archetype]int)
	total := 0
	for _, rec := range s.records {
		if rec.CohortID != cohortID {
			continue
		}
		counts[rec.Archetype]++
		total++
	}

	return buildCohortStats(cohortID, counts, total), nil
}

// Count returns the number of distinct sessions for metrics sampling.
func (s *MemoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// buildCohortStats assembles a dense distribution in catalog order with
// percentages rounded to one decimal place.
func buildCohortStats(cohortID string, counts map[types.Archetype]int, total int) types.CohortStats {
	stats := types.CohortStats{
		CohortID:          cohortID,
		TotalParticipants: total,
		Distributions:     make([]types.Distribution, 0, len(catalog.Order())),
	}
	for _, a := range catalog.Order() {
		d := types.Distribution{Archetype: a, Count: counts[a]}
		if total > 0 {
			d.Percentage = math.Round(float64(counts[a])/float64(total)*1000) / 10
		}
		stats.Distributions = append(stats.Distributions, d)
	}
	return stats
}
