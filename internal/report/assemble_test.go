package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/entity"
)

func judged(benchOrdinal int, verdict constants.Verdict) entity.JudgedPair {
	return entity.JudgedPair{
		Pair: entity.MatchCandidate{
			Benchmark: entity.Clause{Label: "一", Ordinal: benchOrdinal, Body: "基准条款"},
			Candidate: entity.Clause{Label: "一", Ordinal: benchOrdinal, Body: "对比条款"},
			Method:    entity.MatchByLabel,
		},
		Verdict: verdict,
	}
}

func TestAssembleCountsAndOrdering(t *testing.T) {
	bench := entity.Document{ID: uuid.New(), SourcePath: "benchmark.pdf"}
	comp := entity.Document{ID: uuid.New(), SourcePath: "contract.pdf"}

	// deliberately out of benchmark order
	pairs := []entity.JudgedPair{
		judged(2, constants.VerdictUnknown),
		judged(0, constants.VerdictCompliant),
		judged(1, constants.VerdictNonCompliant),
	}

	rep := Assemble(bench, comp, pairs, nil, nil, nil)

	assert.Equal(t, bench.ID, rep.BenchmarkID)
	assert.Equal(t, "contract.pdf", rep.ComparisonSource)

	assert.Equal(t, 3, rep.Counts.Matched)
	assert.Equal(t, 1, rep.Counts.Compliant)
	assert.Equal(t, 1, rep.Counts.NonCompliant)
	assert.Equal(t, 1, rep.Counts.Unknown)

	require.Len(t, rep.Judged, 3)
	for i := 1; i < len(rep.Judged); i++ {
		assert.Less(t, rep.Judged[i-1].Pair.Benchmark.Ordinal, rep.Judged[i].Pair.Benchmark.Ordinal)
	}
}

func TestAssembleDoesNotMutateInput(t *testing.T) {
	pairs := []entity.JudgedPair{
		judged(1, constants.VerdictCompliant),
		judged(0, constants.VerdictCompliant),
	}

	Assemble(entity.Document{}, entity.Document{}, pairs, nil, nil, nil)

	assert.Equal(t, 1, pairs[0].Pair.Benchmark.Ordinal, "caller slice must stay untouched")
}

func TestAssembleIdempotentCounts(t *testing.T) {
	bench := entity.Document{ID: uuid.New()}
	comp := entity.Document{ID: uuid.New()}
	pairs := []entity.JudgedPair{
		judged(0, constants.VerdictCompliant),
		judged(1, constants.VerdictUnknown),
	}
	unmatchedB := []entity.Clause{{Label: "三", Ordinal: 2}}
	unmatchedC := []entity.Clause{{Ordinal: 5}}
	diags := []string{"contract.pdf: degraded segmentation"}

	first := Assemble(bench, comp, pairs, unmatchedB, unmatchedC, diags)
	second := Assemble(bench, comp, pairs, unmatchedB, unmatchedC, diags)

	assert.Equal(t, first.Counts, second.Counts)
	assert.Equal(t, first.Judged, second.Judged)
	assert.Equal(t, first.UnmatchedBenchmark, second.UnmatchedBenchmark)
	assert.Equal(t, first.Diagnostics, second.Diagnostics)
}

func TestAssembleEmpty(t *testing.T) {
	rep := Assemble(entity.Document{}, entity.Document{}, nil, nil, nil, nil)
	assert.Zero(t, rep.Counts.Matched)
	assert.Empty(t, rep.Judged)
	assert.False(t, rep.GeneratedAt.IsZero())
}
