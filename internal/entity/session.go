package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/liang-qiu/clausecheck/constants"
)

// AnalysisOptions are the per-run knobs the caller controls.
type AnalysisOptions struct {
	MinSimilarity  float64             `json:"min_similarity"`
	Precision      constants.Precision `json:"precision"`
	MaxClauses     int                 `json:"max_clauses"`      // per document; 0 = no limit
	MaxJudgedPairs int                 `json:"max_judged_pairs"` // judgment invocation cap, 0 = default
	JudgeWorkers   int                 `json:"judge_workers"`    // 0/1 = sequential
	KeepPreamble   bool                `json:"keep_preamble"`
}

// AnalysisSession is the explicit per-run state: the benchmark, the documents
// to check against it, and the options. All run state flows through this value
// rather than ambient globals.
type AnalysisSession struct {
	ID              uuid.UUID       `json:"id"`
	BenchmarkPath   string          `json:"benchmark_path"`
	ComparisonPaths []string        `json:"comparison_paths"`
	Options         AnalysisOptions `json:"options"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewSession builds a session with a fresh ID and defaulted options.
func NewSession(benchmarkPath string, comparisonPaths []string, opts AnalysisOptions) AnalysisSession {
	if opts.MinSimilarity <= 0 {
		opts.MinSimilarity = 0.35
	}
	if opts.Precision == "" {
		opts.Precision = constants.PrecisionMedium
	}
	if opts.MaxJudgedPairs <= 0 {
		opts.MaxJudgedPairs = 50
	}
	if opts.JudgeWorkers <= 0 {
		opts.JudgeWorkers = 1
	}
	return AnalysisSession{
		ID:              uuid.New(),
		BenchmarkPath:   benchmarkPath,
		ComparisonPaths: comparisonPaths,
		Options:         opts,
		CreatedAt:       time.Now().UTC(),
	}
}
