package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ethoslab/archetype/internal/domain/types"
)

const defaultKeyPrefix = "archetype"

// RedisStore implements Store on Redis. Results live as JSON strings keyed
// by session, arrival order in a sorted set scored by an INCR sequence, and
// cohort tallies in per-cohort hashes.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store around an existing client.
func NewRedisStore(client *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) sessionKey(id string) string { return s.prefix + ":session:" + id }
func (s *RedisStore) orderKey() string            { return s.prefix + ":sessions" }
func (s *RedisStore) seqKey() string              { return s.prefix + ":seq" }
func (s *RedisStore) cohortKey(id string) string  { return s.prefix + ":cohort:" + id }

// Save upserts a result by session ID. First arrivals get the next sequence
// number; re-saves keep their original position and re-tally cohort counts
// when the archetype or cohort changed.
func (s *RedisStore) Save(ctx context.Context, record types.ResultRecord) error {
	if record.SessionID == "" {
		return ErrInvalidRecord
	}

	prev, err := s.Get(ctx, record.SessionID)
	exists := err == nil
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := s.client.Set(ctx, s.sessionKey(record.SessionID), payload, 0).Err(); err != nil {
		return fmt.Errorf("set record: %w", err)
	}

	if !exists {
		seq, err := s.client.Incr(ctx, s.seqKey()).Result()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		if err := s.client.ZAdd(ctx, s.orderKey(), redis.Z{
			Score:  float64(seq),
			Member: record.SessionID,
		}).Err(); err != nil {
			return fmt.Errorf("record order: %w", err)
		}
	}

	sameTally := exists && prev.CohortID == record.CohortID && prev.Archetype == record.Archetype
	if sameTally {
		return nil
	}
	if exists && prev.CohortID != "" {
		if err := s.client.HIncrBy(ctx, s.cohortKey(prev.CohortID), string(prev.Archetype), -1).Err(); err != nil {
			return fmt.Errorf("retract cohort tally: %w", err)
		}
	}
	if record.CohortID != "" {
		if err := s.client.HIncrBy(ctx, s.cohortKey(record.CohortID), string(record.Archetype), 1).Err(); err != nil {
			return fmt.Errorf("cohort tally: %w", err)
		}
	}
	return nil
}

// AttachEmail sets the email on an existing result.
func (s *RedisStore) AttachEmail(ctx context.Context, sessionID, email string) error {
	rec, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	rec.Email = email

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := s.client.Set(ctx, s.sessionKey(sessionID), payload, 0).Err(); err != nil {
		return fmt.Errorf("set record: %w", err)
	}
	return nil
}

// Get returns the stored result for a session.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (types.ResultRecord, error) {
	raw, err := s.client.Get(ctx, s.sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return types.ResultRecord{}, ErrNotFound
	}
	if err != nil {
		return types.ResultRecord{}, fmt.Errorf("get record: %w", err)
	}

	var rec types.ResultRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return types.ResultRecord{}, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, nil
}

// TotalSessions returns the number of distinct sessions recorded.
func (s *RedisStore) TotalSessions(ctx context.Context) (int, error) {
	n, err := s.client.ZCard(ctx, s.orderKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return int(n), nil
}

// SessionNumber returns the 1-based arrival position of a session.
func (s *RedisStore) SessionNumber(ctx context.Context, sessionID string) (int, error) {
	rank, err := s.client.ZRank(ctx, s.orderKey(), sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("session rank: %w", err)
	}
	return int(rank) + 1, nil
}

// CohortStats aggregates the archetype distribution for a cohort.
func (s *RedisStore) CohortStats(ctx context.Context, cohortID string) (types.CohortStats, error) {
	tallies, err := s.client.HGetAll(ctx, s.cohortKey(cohortID)).Result()
	if err != nil {
		return types.CohortStats{}, fmt.Errorf("cohort tallies: %w", err)
	}

	counts := make(map[types.Archetype]int, len(tallies))
	total := 0
	for archetype, raw := range tallies {
		var n int
		if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
			return types.CohortStats{}, fmt.Errorf("parse tally %q: %w", raw, err)
		}
		if n <= 0 {
			continue
		}
		counts[types.Archetype(archetype)] = n
		total += n
	}

	return buildCohortStats(cohortID, counts, total), nil
}

// Count returns the number of distinct sessions for metrics sampling.
func (s *RedisStore) Count(ctx context.Context) int {
	n, err := s.client.ZCard(ctx, s.orderKey()).Result()
	if err != nil {
		return 0
	}
	return int(n)
}
