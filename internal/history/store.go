// Package history keeps a local, file-backed record of CLI analysis runs.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/liang-qiu/clausecheck/internal/pipeline"
)

type Store struct {
	db *sql.DB
}

// Open opens (and initializes) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS run_history (
			id              TEXT PRIMARY KEY,
			benchmark_path  TEXT NOT NULL,
			documents       INTEGER NOT NULL,
			reports         INTEGER NOT NULL,
			compliant       INTEGER NOT NULL,
			non_compliant   INTEGER NOT NULL,
			unknown         INTEGER NOT NULL,
			judge_calls     INTEGER NOT NULL,
			errors          TEXT,
			outcome         TEXT NOT NULL,
			created_at      TEXT NOT NULL
		)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Record stores one finished run's summary plus the full outcome as JSON.
func (s *Store) Record(ctx context.Context, outcome *pipeline.RunOutcome) error {
	var compliant, nonCompliant, unknown int
	for _, r := range outcome.Reports {
		compliant += r.Counts.Compliant
		nonCompliant += r.Counts.NonCompliant
		unknown += r.Counts.Unknown
	}

	errs, err := json.Marshal(outcome.Errors)
	if err != nil {
		return err
	}
	full, err := json.Marshal(outcome)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO run_history
			(id, benchmark_path, documents, reports, compliant, non_compliant, unknown,
			 judge_calls, errors, outcome, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		outcome.Session.ID.String(),
		outcome.Session.BenchmarkPath,
		len(outcome.Session.ComparisonPaths),
		len(outcome.Reports),
		compliant, nonCompliant, unknown,
		outcome.JudgeCalls,
		string(errs),
		string(full),
		outcome.FinishedAt.Format(time.RFC3339),
	)
	return err
}

// Entry is one row of run history.
type Entry struct {
	ID           uuid.UUID
	Benchmark    string
	Documents    int
	Reports      int
	Compliant    int
	NonCompliant int
	Unknown      int
	JudgeCalls   int
	CreatedAt    time.Time
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, benchmark_path, documents, reports, compliant, non_compliant, unknown, judge_calls, created_at
		FROM run_history ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var id, created string
		if err := rows.Scan(&id, &e.Benchmark, &e.Documents, &e.Reports,
			&e.Compliant, &e.NonCompliant, &e.Unknown, &e.JudgeCalls, &created); err != nil {
			return nil, err
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad run id %q: %w", id, err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("bad timestamp %q: %w", created, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Outcome loads the full stored outcome for one run.
func (s *Store) Outcome(ctx context.Context, id uuid.UUID) (*pipeline.RunOutcome, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT outcome FROM run_history WHERE id = ?`, id.String()).Scan(&raw)
	if err != nil {
		return nil, err
	}
	var out pipeline.RunOutcome
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode outcome: %w", err)
	}
	return &out, nil
}
