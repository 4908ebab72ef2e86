// Package worker drains the submission queue: each submission is persisted
// and, when it carries an email, the archetype report goes out at most once
// per session.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/ethoslab/archetype/internal/adapters/notify"
	"github.com/ethoslab/archetype/internal/adapters/repository"
	"github.com/ethoslab/archetype/internal/domain/dedupe"
	"github.com/ethoslab/archetype/internal/domain/model"
	"github.com/ethoslab/archetype/pkg/logger"
	"github.com/ethoslab/archetype/pkg/metrics"
)

const (
	defaultWorkerMultiplier = 4
	poolShutdownTimeout     = 30 * time.Second
)

// Submission is what workers read off the queue.
type Submission = model.Submission

// Queue defines how workers receive submissions.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Submission
}

// Worker processes submissions until stopped.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown stops the worker, letting in-flight work finish.
	Shutdown(ctx context.Context) error
}

// SubmissionWorker implements Worker against a store, mailer and suppressor.
type SubmissionWorker struct {
	queue      Queue
	store      repository.Store
	mailer     notify.Mailer
	suppressor dedupe.Suppressor
	name       string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewSubmissionWorker creates a worker with configuration options.
func NewSubmissionWorker(q Queue, store repository.Store, mailer notify.Mailer, suppressor dedupe.Suppressor, opts ...Option) *SubmissionWorker {
	w := &SubmissionWorker{
		queue:      q,
		store:      store,
		mailer:     mailer,
		suppressor: suppressor,
		name:       "worker",
		shutdown:   make(chan struct{}),
		done:       make(chan struct{}),
		logger:     logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *SubmissionWorker) Run(ctx context.Context) {
	defer close(w.done)

	subs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case sub, ok := <-subs:
			if !ok {
				return
			}
			if err := w.process(ctx, sub); err != nil {
				w.logger.Error(ctx, "error processing submission", logger.Error(err))
			}
		}
	}
}

// Shutdown stops the worker.
func (w *SubmissionWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// process persists one submission and sends its report when due.
// Report delivery is best effort: a failed send is logged and counted
// but the save stands.
func (w *SubmissionWorker) process(ctx context.Context, sub Submission) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	if err := w.store.Save(ctx, sub.Record()); err != nil {
		metrics.RecordSubmissionFailed()
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "save_failed")
		w.logger.Error(ctx, "save failed",
			logger.String("sessionID", sub.SessionID),
			logger.Error(err),
		)
		return fmt.Errorf("save session %s: %w", sub.SessionID, err)
	}
	metrics.RecordSubmissionSaved()

	if !sub.HasEmail() {
		return nil
	}

	if w.suppressor.SeenAndRecord(ctx, sub.SessionID) {
		metrics.RecordEmailDeduplicated()
		w.logger.Debug(ctx, "report already sent",
			logger.String("sessionID", sub.SessionID),
		)
		return nil
	}

	err := w.mailer.SendReport(ctx, notify.Report{
		To:        sub.Email,
		SessionID: sub.SessionID,
		Archetype: sub.Archetype,
	})
	if err != nil {
		w.suppressor.Unrecord(ctx, sub.SessionID)
		metrics.RecordEmailFailed()
		metrics.RecordErrorByComponent("worker", "email_failed")
		w.logger.Warn(ctx, "report delivery failed",
			logger.String("sessionID", sub.SessionID),
			logger.Error(err),
		)
		return nil
	}
	metrics.RecordEmailSent()
	return nil
}

// Pool manages multiple workers.
type Pool struct {
	workers []*SubmissionWorker
	queue   Queue

	logger logger.Logger
}

// NewPool creates a pool of workerCount workers. A non-positive count
// scales with the CPU count.
func NewPool(workerCount int, q Queue, store repository.Store, mailer notify.Mailer, suppressor dedupe.Suppressor) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	p := &Pool{
		workers: make([]*SubmissionWorker, workerCount),
		queue:   q,
		logger:  logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		p.workers[i] = NewSubmissionWorker(
			q, store, mailer, suppressor,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerCount(workerCount)

	return p
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Shutdown closes the queue and waits for every worker to drain.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	return nil
}
