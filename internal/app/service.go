// Package service wires the quiz domain together and implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"

	subqueue "github.com/ethoslab/archetype/internal/adapters/mq/queue"
	workerpool "github.com/ethoslab/archetype/internal/adapters/mq/worker"
	"github.com/ethoslab/archetype/internal/adapters/notify"
	"github.com/ethoslab/archetype/internal/adapters/repository"
	"github.com/ethoslab/archetype/internal/domain/dedupe"
	"github.com/ethoslab/archetype/internal/domain/model"
	"github.com/ethoslab/archetype/internal/domain/scoring"
	"github.com/ethoslab/archetype/internal/domain/types"
	"github.com/ethoslab/archetype/pkg/logger"
	"github.com/ethoslab/archetype/pkg/metrics"
)

// Service implements the API dependencies for the quiz system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	suppressor dedupe.Suppressor
	queue      subqueue.Queue
	engine     scoring.Engine
	mailer     notify.Mailer
	pool       *workerpool.Pool

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int
	strategy    string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the submission queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the email suppression cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithStrategy sets the scoring strategy identifier.
func WithStrategy(strategy string) Option {
	return func(s *Service) {
		if strategy != "" {
			s.strategy = strategy
		}
	}
}

// WithStore sets the result store. Defaults to the in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithMailer sets the report mailer. Defaults to the noop mailer.
func WithMailer(mailer notify.Mailer) Option {
	return func(s *Service) {
		if mailer != nil {
			s.mailer = mailer
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		queueSize:   10000,
		dedupeSize:  50000,
		strategy:    scoring.StrategySemantic,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting quiz service...")

	engine, err := scoring.New(s.strategy, scoring.WithLogger(s.logger.Named("scoring")))
	if err != nil {
		return fmt.Errorf("build scoring engine: %w", err)
	}
	s.engine = engine

	if s.store == nil {
		s.store = repository.NewMemoryStore()
		s.logger.Info(ctx, "using in-memory store")
	}
	if s.mailer == nil {
		s.mailer = notify.NoopMailer{}
	}
	s.suppressor = dedupe.NewMemorySuppressor(
		dedupe.WithLimit(s.dedupeSize),
	)
	s.queue = subqueue.NewInMemoryQueue(
		subqueue.WithCapacity(s.queueSize),
	)

	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.store, s.mailer, s.suppressor)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "quiz service started",
		logger.String("strategy", s.strategy),
		logger.Int("workers", s.pool.Size()),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)

	return nil
}

// Stop gracefully shuts down the service, draining queued submissions.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping quiz service...")

	if s.pool != nil {
		_ = s.pool.Shutdown(ctx)
	}

	s.started = false
	s.logger.Info(ctx, "quiz service stopped")
}

// Classify scores the given traits. A blank session ID gets a fresh one so
// the caller can correlate later saves.
func (s *Service) Classify(ctx context.Context, sessionID string, traits []string) (types.Classification, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	out, err := s.engine.Classify(ctx, traits)
	if err != nil {
		return types.Classification{}, fmt.Errorf("classify session %s: %w", sessionID, err)
	}

	return types.Classification{
		SessionID: sessionID,
		Archetype: out.Archetype,
		Scores:    out.Scores,
		Breakdown: out.Breakdown,
		Unmapped:  out.Unmapped,
		Strategy:  s.engine.Strategy(),
	}, nil
}

// Breakdown returns the percentage distribution for the given traits
// without the rest of the classification envelope.
func (s *Service) Breakdown(ctx context.Context, traits []string) (types.Breakdown, error) {
	return s.engine.Breakdown(ctx, traits)
}

// SaveResult persists a submission synchronously.
func (s *Service) SaveResult(ctx context.Context, sub model.Submission) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(ctx, sub.Record()); err != nil {
		metrics.RecordSubmissionFailed()
		return fmt.Errorf("save session %s: %w", sub.SessionID, err)
	}
	metrics.RecordSubmissionSaved()
	return nil
}

// Submit enqueues a submission for asynchronous persistence and report
// delivery. Returns ErrQueueFull when backpressure rejects it.
func (s *Service) Submit(ctx context.Context, sub model.Submission) (string, error) {
	if sub.SessionID == "" {
		sub.SessionID = uuid.NewString()
	}
	if err := sub.Validate(); err != nil {
		return "", err
	}
	if !s.queue.Enqueue(ctx, sub) {
		return "", ErrQueueFull
	}
	return sub.SessionID, nil
}

// AttachEmail sets the email on an already saved result.
func (s *Service) AttachEmail(ctx context.Context, sessionID, email string) error {
	return s.store.AttachEmail(ctx, sessionID, email)
}

// Result returns the stored result for a session.
func (s *Service) Result(ctx context.Context, sessionID string) (types.ResultRecord, error) {
	return s.store.Get(ctx, sessionID)
}

// CohortStats aggregates the archetype distribution for a cohort.
func (s *Service) CohortStats(ctx context.Context, cohortID string) (types.CohortStats, error) {
	return s.store.CohortStats(ctx, cohortID)
}

// QuizStats reports a session's chronological position among all takers.
func (s *Service) QuizStats(ctx context.Context, sessionID string) (types.QuizStats, error) {
	total, err := s.store.TotalSessions(ctx)
	if err != nil {
		return types.QuizStats{}, err
	}

	stats := types.QuizStats{
		TotalQuizTakers: total,
		SessionID:       sessionID,
	}
	if sessionID != "" {
		n, err := s.store.SessionNumber(ctx, sessionID)
		if err != nil {
			return types.QuizStats{}, err
		}
		stats.QuizTakerNumber = n
	}
	metrics.UpdateTotalSessions(total)
	return stats, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"strategy":    s.strategy,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}

	if s.started {
		queueLen := s.queue.Len(ctx)
		totalSessions := s.store.Count(ctx)

		stats["queueLength"] = queueLen
		stats["totalSessions"] = totalSessions
		stats["suppressedEmails"] = s.suppressor.Size()

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateTotalSessions(totalSessions)
	}

	return stats
}
