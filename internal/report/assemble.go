// Package report aggregates judged pairs and unmatched clauses into the final
// report object for one comparison document.
package report

import (
	"sort"
	"time"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/entity"
)

// Assemble is pure aggregation: it orders judged pairs by the benchmark
// clause ordinal, counts verdicts, and carries both unmatched lists through.
// Re-assembling the same inputs yields identical counts and ordering.
func Assemble(
	benchmark entity.Document,
	comparison entity.Document,
	judged []entity.JudgedPair,
	unmatchedBenchmark []entity.Clause,
	unmatchedCandidates []entity.Clause,
	diagnostics []string,
) entity.Report {
	ordered := make([]entity.JudgedPair, len(judged))
	copy(ordered, judged)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Pair.Benchmark.Ordinal < ordered[j].Pair.Benchmark.Ordinal
	})

	counts := entity.ReportCounts{Matched: len(ordered)}
	for _, jp := range ordered {
		switch jp.Verdict {
		case constants.VerdictCompliant:
			counts.Compliant++
		case constants.VerdictNonCompliant:
			counts.NonCompliant++
		default:
			counts.Unknown++
		}
	}

	return entity.Report{
		BenchmarkID:         benchmark.ID,
		BenchmarkSource:     benchmark.SourcePath,
		ComparisonID:        comparison.ID,
		ComparisonSource:    comparison.SourcePath,
		GeneratedAt:         time.Now().UTC(),
		Counts:              counts,
		Judged:              ordered,
		UnmatchedBenchmark:  unmatchedBenchmark,
		UnmatchedCandidates: unmatchedCandidates,
		Diagnostics:         diagnostics,
	}
}
