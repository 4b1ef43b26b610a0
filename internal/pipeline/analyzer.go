// Package pipeline coordinates extract → segment → match → judge → assemble
// for one analysis session.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/entity"
	"github.com/liang-qiu/clausecheck/internal/extract"
	"github.com/liang-qiu/clausecheck/internal/judge"
	"github.com/liang-qiu/clausecheck/internal/match"
	"github.com/liang-qiu/clausecheck/internal/normalize"
	"github.com/liang-qiu/clausecheck/internal/report"
	"github.com/liang-qiu/clausecheck/internal/segment"
)

// Analyzer owns the per-stage collaborators. One Analyzer is reusable across
// runs; all per-run state lives in the AnalysisSession and the RunOutcome.
type Analyzer struct {
	Logger    *slog.Logger
	Extractor extract.TextExtractor
	Segmenter *segment.Segmenter
	Matcher   *match.Matcher
	// Completer is the judgment collaborator; nil disables judgment and
	// leaves every matched pair UNKNOWN.
	Completer judge.Completer
	JudgeCfg  judge.Config
}

func NewAnalyzer(logger *slog.Logger, ex extract.TextExtractor, completer judge.Completer, judgeCfg judge.Config) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		Logger:    logger,
		Extractor: ex,
		Segmenter: segment.NewSegmenter(logger),
		Matcher:   match.NewMatcher(logger),
		Completer: completer,
		JudgeCfg:  judgeCfg,
	}
}

// RunOutcome is everything one session produced. Per-document failures are
// recorded here, not propagated: a degraded-but-present report beats a blank
// failure.
type RunOutcome struct {
	Session    entity.AnalysisSession `json:"session"`
	Reports    []entity.Report        `json:"reports"`
	Errors     []string               `json:"errors,omitempty"`
	JudgeCalls int                    `json:"judge_calls"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
}

// Run processes every comparison document in the session sequentially:
// extract → normalize → segment → match → judge all pairs → assemble.
// Only a failure to process the benchmark itself aborts the run.
func (a *Analyzer) Run(ctx context.Context, session entity.AnalysisSession) (*RunOutcome, error) {
	out := &RunOutcome{Session: session, StartedAt: time.Now().UTC()}

	benchDoc, benchSeg, err := a.loadDocument(ctx, session.BenchmarkPath, session.Options)
	if err != nil {
		return nil, fmt.Errorf("benchmark %s: %w", session.BenchmarkPath, err)
	}
	a.Logger.Info("analyze.benchmark_ready",
		"session_id", session.ID,
		"source", session.BenchmarkPath,
		"clauses", len(benchSeg.Clauses),
		"degraded", benchSeg.Degraded,
	)

	// One adapter per run: the invocation budget is shared across all
	// comparison documents and all workers.
	judgeCfg := a.JudgeCfg
	if session.Options.MaxJudgedPairs > 0 {
		judgeCfg.MaxInvocations = session.Options.MaxJudgedPairs
	}
	adapter := judge.NewAdapter(a.Completer, judgeCfg, a.Logger)

	for _, path := range session.ComparisonPaths {
		if err := ctx.Err(); err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("%s: run canceled before processing", path))
			continue
		}

		rep, err := a.analyzeOne(ctx, session, adapter, benchDoc, benchSeg, path)
		if err != nil {
			a.Logger.Error("analyze.document_failed", "session_id", session.ID, "source", path, "error", err)
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		out.Reports = append(out.Reports, rep)
	}

	out.JudgeCalls = adapter.Invocations()
	out.FinishedAt = time.Now().UTC()
	a.Logger.Info("analyze.run_done",
		"session_id", session.ID,
		"reports", len(out.Reports),
		"errors", len(out.Errors),
		"judge_calls", out.JudgeCalls,
		"elapsed_ms", out.FinishedAt.Sub(out.StartedAt).Milliseconds(),
	)
	return out, nil
}

func (a *Analyzer) analyzeOne(
	ctx context.Context,
	session entity.AnalysisSession,
	adapter *judge.Adapter,
	benchDoc entity.Document,
	benchSeg segment.Result,
	path string,
) (entity.Report, error) {
	compDoc, compSeg, err := a.loadDocument(ctx, path, session.Options)
	if err != nil {
		return entity.Report{}, err
	}

	mr := a.Matcher.Match(benchSeg.Clauses, compSeg.Clauses, session.Options.MinSimilarity)
	a.Logger.Info("analyze.matched",
		"session_id", session.ID,
		"source", path,
		"pairs", len(mr.Pairs),
		"unmatched_benchmark", len(mr.UnmatchedBenchmark),
		"unmatched_candidates", len(mr.UnmatchedCandidates),
	)

	judged := a.judgeAll(ctx, adapter, mr.Pairs, session.Options.JudgeWorkers)

	diags := collectDiagnostics(benchDoc, benchSeg, compDoc, compSeg)
	return report.Assemble(benchDoc, compDoc, judged, mr.UnmatchedBenchmark, mr.UnmatchedCandidates, diags), nil
}

// judgeAll fans matched pairs out to a bounded worker pool. Each worker writes
// into its pair's slot, so no result collection is shared-mutable; the
// WaitGroup is the assembly barrier. Cancellation is checked between pairs;
// undispatched pairs come back UNKNOWN with the cancellation recorded.
func (a *Analyzer) judgeAll(ctx context.Context, adapter *judge.Adapter, pairs []entity.MatchCandidate, workers int) []entity.JudgedPair {
	if len(pairs) == 0 {
		return nil
	}
	if a.Completer == nil {
		out := make([]entity.JudgedPair, len(pairs))
		for i, p := range pairs {
			out[i] = entity.JudgedPair{Pair: p, Verdict: constants.VerdictUnknown, Rationale: "judgment disabled"}
		}
		return out
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	out := make([]entity.JudgedPair, len(pairs))
	dispatched := make([]bool, len(pairs))
	jobs := make(chan int)

	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := range jobs {
				out[i] = adapter.Judge(ctx, pairs[i])
			}
		}()
	}

dispatch:
	for i := range pairs {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
			dispatched[i] = true
		}
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}

	for i := range pairs {
		if !dispatched[i] {
			out[i] = entity.JudgedPair{
				Pair:      pairs[i],
				Verdict:   constants.VerdictUnknown,
				Rationale: "judgment skipped: analysis canceled",
			}
		}
	}
	return out
}

// loadDocument runs extract → normalize → segment for one source file and
// applies the per-document clause cap.
func (a *Analyzer) loadDocument(ctx context.Context, path string, opts entity.AnalysisOptions) (entity.Document, segment.Result, error) {
	res, err := a.Extractor.Extract(ctx, path)
	if err != nil {
		return entity.Document{}, segment.Result{}, fmt.Errorf("extract: %w", err)
	}

	doc := entity.Document{
		ID:          uuid.New(),
		SourcePath:  path,
		Format:      res.SourceType,
		Text:        res.Text,
		Pages:       res.Pages,
		Method:      res.Method,
		Confidence:  res.Confidence,
		Warnings:    res.Warnings,
		ExtractedAt: time.Now().UTC(),
	}

	seg := a.Segmenter.Segment(normalize.Normalize(res.Text), doc.ID, segment.Options{
		Precision:    opts.Precision,
		KeepPreamble: opts.KeepPreamble,
	})

	if opts.MaxClauses > 0 && len(seg.Clauses) > opts.MaxClauses {
		seg.Diagnostics = append(seg.Diagnostics, segment.Diagnostic{
			Code:    "clause-cap",
			Message: fmt.Sprintf("%d clauses capped to %d", len(seg.Clauses), opts.MaxClauses),
		})
		seg.Clauses = seg.Clauses[:opts.MaxClauses]
	}
	return doc, seg, nil
}

func collectDiagnostics(benchDoc entity.Document, benchSeg segment.Result, compDoc entity.Document, compSeg segment.Result) []string {
	var diags []string
	add := func(source string, seg segment.Result, warnings []string) {
		for _, d := range seg.Diagnostics {
			diags = append(diags, fmt.Sprintf("%s: %s", source, d.Message))
		}
		for _, w := range warnings {
			diags = append(diags, fmt.Sprintf("%s: %s", source, w))
		}
	}
	add(benchDoc.SourcePath, benchSeg, benchDoc.Warnings)
	add(compDoc.SourcePath, compSeg, compDoc.Warnings)
	return diags
}
