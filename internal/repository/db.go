package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/liang-qiu/clausecheck/internal/common"
)

// Open creates a pgx pool from the database config.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("connecting to database")

	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "clausecheck"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	dialCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}
	return pool, nil
}

// HealthCheck pings the pool with a bounded timeout.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return pool.Ping(ctx)
}

// Migrate creates the runs tables when they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS analysis_run (
	id              UUID PRIMARY KEY,
	benchmark_path  TEXT NOT NULL,
	comparison_paths TEXT[] NOT NULL,
	options         JSONB NOT NULL,
	status          TEXT NOT NULL,
	error_message   TEXT,
	judge_calls     INT NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL,
	finished_at     TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS analysis_report (
	run_id          UUID NOT NULL REFERENCES analysis_run(id) ON DELETE CASCADE,
	position        INT NOT NULL,
	comparison_path TEXT NOT NULL,
	report          JSONB NOT NULL,
	PRIMARY KEY (run_id, position)
);`
	_, err := pool.Exec(ctx, ddl)
	return err
}
