package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportCounts summarizes judged pairs for one comparison document.
type ReportCounts struct {
	Matched      int `json:"matched"`
	Compliant    int `json:"compliant"`
	NonCompliant int `json:"non_compliant"`
	Unknown      int `json:"unknown"`
}

// Report aggregates the outcome of checking one comparison document against
// the benchmark. Built once per analysis run and written to an artifact.
type Report struct {
	BenchmarkID      uuid.UUID    `json:"benchmark_id"`
	BenchmarkSource  string       `json:"benchmark_source"`
	ComparisonID     uuid.UUID    `json:"comparison_id"`
	ComparisonSource string       `json:"comparison_source"`
	GeneratedAt      time.Time    `json:"generated_at"`
	Counts           ReportCounts `json:"counts"`
	// Judged pairs ordered by benchmark clause ordinal.
	Judged []JudgedPair `json:"judged"`
	// Benchmark clauses with no counterpart (requirements without coverage).
	UnmatchedBenchmark []Clause `json:"unmatched_benchmark,omitempty"`
	// Comparison clauses no benchmark clause claimed (undisclosed additions).
	UnmatchedCandidates []Clause `json:"unmatched_candidates,omitempty"`
	// Diagnostics carries non-fatal quality signals (degraded segmentation,
	// extraction warnings) surfaced to the reader.
	Diagnostics []string `json:"diagnostics,omitempty"`
}
