package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/common"
	"github.com/liang-qiu/clausecheck/internal/entity"
)

// Run is the stored view of one analysis run.
type Run struct {
	ID              uuid.UUID              `json:"id"`
	BenchmarkPath   string                 `json:"benchmark_path"`
	ComparisonPaths []string               `json:"comparison_paths"`
	Options         entity.AnalysisOptions `json:"options"`
	Status          constants.RunStatus    `json:"status"`
	ErrorMessage    string                 `json:"error_message,omitempty"`
	JudgeCalls      int                    `json:"judge_calls"`
	CreatedAt       time.Time              `json:"created_at"`
	FinishedAt      *time.Time             `json:"finished_at,omitempty"`
}

// RunStore persists analysis runs and their reports.
type RunStore struct {
	pool *pgxpool.Pool
}

func NewRunStore(pool *pgxpool.Pool) *RunStore {
	return &RunStore{pool: pool}
}

// CreateRun records a queued session.
func (s *RunStore) CreateRun(ctx context.Context, session entity.AnalysisSession) error {
	opts, err := json.Marshal(session.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO analysis_run (id, benchmark_path, comparison_paths, options, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		session.ID, session.BenchmarkPath, session.ComparisonPaths, opts,
		string(constants.RunStatusQueued), session.CreatedAt,
	)
	if err != nil {
		return common.WrapError(err, "insert run")
	}
	return nil
}

// MarkRunning flips a queued run to RUNNING.
func (s *RunStore) MarkRunning(ctx context.Context, runID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE analysis_run SET status = $2 WHERE id = $1`,
		runID, string(constants.RunStatusRunning),
	)
	return common.WrapError(err, "mark running")
}

// FinishRun stores the outcome: reports on success, the error message on
// failure, terminal status either way.
func (s *RunStore) FinishRun(ctx context.Context, runID uuid.UUID, reports []entity.Report, judgeCalls int, runErr error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return common.WrapError(err, "begin")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	status := constants.RunStatusDone
	errMsg := ""
	if runErr != nil {
		status = constants.RunStatusFailed
		errMsg = runErr.Error()
	}
	now := time.Now().UTC()
	if _, err := tx.Exec(ctx, `
		UPDATE analysis_run
		SET status = $2, error_message = NULLIF($3, ''), judge_calls = $4, finished_at = $5
		WHERE id = $1`,
		runID, string(status), errMsg, judgeCalls, now,
	); err != nil {
		return common.WrapError(err, "update run")
	}

	for i, rep := range reports {
		body, err := json.Marshal(rep)
		if err != nil {
			return fmt.Errorf("marshal report %d: %w", i, err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO analysis_report (run_id, position, comparison_path, report)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (run_id, position) DO UPDATE SET report = EXCLUDED.report`,
			runID, i, rep.ComparisonSource, body,
		); err != nil {
			return common.WrapError(err, "insert report")
		}
	}
	return common.WrapError(tx.Commit(ctx), "commit")
}

// GetRun loads one run or common.ErrNotFound.
func (s *RunStore) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, benchmark_path, comparison_paths, options, status,
		       COALESCE(error_message, ''), judge_calls, created_at, finished_at
		FROM analysis_run WHERE id = $1`, runID)

	var r Run
	var opts []byte
	if err := row.Scan(&r.ID, &r.BenchmarkPath, &r.ComparisonPaths, &opts,
		&r.Status, &r.ErrorMessage, &r.JudgeCalls, &r.CreatedAt, &r.FinishedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get run")
	}
	if err := json.Unmarshal(opts, &r.Options); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return &r, nil
}

// ListRuns returns runs newest first.
func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, benchmark_path, comparison_paths, options, status,
		       COALESCE(error_message, ''), judge_calls, created_at, finished_at
		FROM analysis_run ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, common.WrapError(err, "list runs")
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var opts []byte
		if err := rows.Scan(&r.ID, &r.BenchmarkPath, &r.ComparisonPaths, &opts,
			&r.Status, &r.ErrorMessage, &r.JudgeCalls, &r.CreatedAt, &r.FinishedAt); err != nil {
			return nil, common.WrapError(err, "scan run")
		}
		if err := json.Unmarshal(opts, &r.Options); err != nil {
			return nil, fmt.Errorf("decode options: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetReports loads the stored reports for a run in position order.
func (s *RunStore) GetReports(ctx context.Context, runID uuid.UUID) ([]entity.Report, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT report FROM analysis_report WHERE run_id = $1 ORDER BY position`, runID)
	if err != nil {
		return nil, common.WrapError(err, "get reports")
	}
	defer rows.Close()

	var out []entity.Report
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, common.WrapError(err, "scan report")
		}
		var rep entity.Report
		if err := json.Unmarshal(body, &rep); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
