package repository

import (
	"context"
	"log/slog"

	"github.com/liang-qiu/clausecheck/internal/entity"
	"github.com/liang-qiu/clausecheck/internal/pipeline"
)

// RunSink records lifecycle transitions of queued runs in the run store.
// Persistence failures are logged, not propagated: the run result itself is
// already in memory and losing the audit row must not fail the analysis.
type RunSink struct {
	store  *RunStore
	logger *slog.Logger
}

func NewRunSink(store *RunStore, logger *slog.Logger) *RunSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &RunSink{store: store, logger: logger}
}

func (s *RunSink) RunStarted(ctx context.Context, session entity.AnalysisSession) {
	if err := s.store.MarkRunning(ctx, session.ID); err != nil {
		s.logger.Error("run.mark_running_failed", "run_id", session.ID, "error", err)
	}
}

func (s *RunSink) RunFinished(ctx context.Context, session entity.AnalysisSession, outcome *pipeline.RunOutcome, runErr error) {
	var reports []entity.Report
	judgeCalls := 0
	if outcome != nil {
		reports = outcome.Reports
		judgeCalls = outcome.JudgeCalls
	}
	if err := s.store.FinishRun(ctx, session.ID, reports, judgeCalls, runErr); err != nil {
		s.logger.Error("run.finish_failed", "run_id", session.ID, "error", err)
	}
}
