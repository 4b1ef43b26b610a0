package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/entity"
	"github.com/liang-qiu/clausecheck/internal/pipeline"
)

func sampleOutcome(finished time.Time) *pipeline.RunOutcome {
	session := entity.NewSession("benchmark.pdf", []string{"a.pdf", "b.pdf"}, entity.AnalysisOptions{})
	return &pipeline.RunOutcome{
		Session: session,
		Reports: []entity.Report{
			{
				ComparisonSource: "a.pdf",
				Counts:           entity.ReportCounts{Matched: 3, Compliant: 2, NonCompliant: 1},
			},
			{
				ComparisonSource: "b.pdf",
				Counts:           entity.ReportCounts{Matched: 1, Unknown: 1},
			},
		},
		Errors:     []string{"c.pdf: extract: no such file"},
		JudgeCalls: 4,
		StartedAt:  finished.Add(-time.Minute),
		FinishedAt: finished,
	}
}

func TestStoreRecordAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	first := sampleOutcome(base)
	second := sampleOutcome(base.Add(time.Hour))
	require.NoError(t, store.Record(ctx, first))
	require.NoError(t, store.Record(ctx, second))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, second.Session.ID, entries[0].ID)
	assert.Equal(t, first.Session.ID, entries[1].ID)

	e := entries[0]
	assert.Equal(t, "benchmark.pdf", e.Benchmark)
	assert.Equal(t, 2, e.Documents)
	assert.Equal(t, 2, e.Reports)
	assert.Equal(t, 2, e.Compliant)
	assert.Equal(t, 1, e.NonCompliant)
	assert.Equal(t, 1, e.Unknown)
	assert.Equal(t, 4, e.JudgeCalls)
}

func TestStoreRecentLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, sampleOutcome(base.Add(time.Duration(i)*time.Minute))))
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStoreOutcomeRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	out := sampleOutcome(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	out.Reports[0].Judged = []entity.JudgedPair{{
		Pair: entity.MatchCandidate{
			Benchmark: entity.Clause{Label: "一", Body: "甲方应当按时付款"},
			Candidate: entity.Clause{Label: "一", Body: "甲方应当分期付款"},
			Method:    entity.MatchByLabel,
		},
		Verdict:   constants.VerdictCompliant,
		Rationale: "义务一致",
	}}
	require.NoError(t, store.Record(ctx, out))

	loaded, err := store.Outcome(ctx, out.Session.ID)
	require.NoError(t, err)

	assert.Equal(t, out.Session.ID, loaded.Session.ID)
	require.Len(t, loaded.Reports, 2)
	require.Len(t, loaded.Reports[0].Judged, 1)
	assert.Equal(t, constants.VerdictCompliant, loaded.Reports[0].Judged[0].Verdict)
	assert.Equal(t, out.Errors, loaded.Errors)
}
