// Package async runs analysis sessions on a bounded worker pool behind a
// buffered queue, so the gRPC surface and the directory watcher never block
// on a full run.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/liang-qiu/clausecheck/internal/common"
	"github.com/liang-qiu/clausecheck/internal/entity"
	"github.com/liang-qiu/clausecheck/internal/pipeline"
)

// Job is one queued analysis session.
type Job struct {
	Session entity.AnalysisSession
}

// Sink observes run lifecycle transitions. The repository layer is the usual
// implementation.
type Sink interface {
	RunStarted(ctx context.Context, session entity.AnalysisSession)
	RunFinished(ctx context.Context, session entity.AnalysisSession, outcome *pipeline.RunOutcome, runErr error)
}

type AnalyzerQueue struct {
	analyzer *pipeline.Analyzer
	sink     Sink
	logger   *slog.Logger
	workers  int
	timeout  time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*AnalyzerQueue)

func WithWorkers(n int) Option {
	return func(q *AnalyzerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *AnalyzerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithRunTimeout(d time.Duration) Option {
	return func(q *AnalyzerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewAnalyzerQueue(analyzer *pipeline.Analyzer, sink Sink, logger *slog.Logger, opts ...Option) *AnalyzerQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &AnalyzerQueue{
		analyzer: analyzer,
		sink:     sink,
		logger:   logger,
		workers:  2,
		timeout:  30 * time.Minute,
		ch:       make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *AnalyzerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := common.WithTimeout(context.Background(), q.timeout)
					ctx = common.WithRunID(ctx, job.Session.ID.String())
					if q.sink != nil {
						q.sink.RunStarted(ctx, job.Session)
					}
					outcome, err := q.analyzer.Run(ctx, job.Session)
					if q.sink != nil {
						q.sink.RunFinished(ctx, job.Session, outcome, err)
					}
					cancel()

					if err != nil {
						q.logger.Error("analysis failed", "worker_id", workerID, "session_id", job.Session.ID, "error", err)
					} else {
						q.logger.Info("analysis done", "worker_id", workerID, "session_id", job.Session.ID, "reports", len(outcome.Reports))
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *AnalyzerQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "session_id", job.Session.ID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued session", "session_id", job.Session.ID, "documents", len(job.Session.ComparisonPaths))
	default:
		q.logger.Warn("queue full, applying backpressure", "session_id", job.Session.ID)
		q.ch <- job
	}
	return nil
}

// Shutdown stops intake and waits (bounded by ctx) for in-flight runs.
func (q *AnalyzerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("shutdown timed out with runs in flight")
	}
}
