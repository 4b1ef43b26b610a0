package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/entity"
	"github.com/liang-qiu/clausecheck/internal/extract"
	"github.com/liang-qiu/clausecheck/internal/judge"
)

// stubExtractor serves canned text per path.
type stubExtractor struct {
	texts map[string]string
}

func (s *stubExtractor) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	text, ok := s.texts[path]
	if !ok {
		return extract.TextExtractionResult{}, fmt.Errorf("no such file: %s", path)
	}
	return extract.TextExtractionResult{
		Text:       text,
		Pages:      1,
		SourceType: constants.TXT,
		Method:     "txt",
		Confidence: 1.0,
	}, nil
}

// stubCompleter answers every judgment with a fixed response.
type stubCompleter struct {
	response string
	err      error
	calls    atomic.Int64
}

func (s *stubCompleter) Complete(_ context.Context, _ judge.Request) (string, error) {
	s.calls.Add(1)
	return s.response, s.err
}

const (
	benchText = "第一条 甲方应当按时支付全部货款到位.第二条 乙方应当按期交付全部货物完毕."
	compText  = "第一条 甲方应当分三期支付全部货款.第二条 乙方应当按期交付全部货物完毕."
)

func newTestAnalyzer(texts map[string]string, completer judge.Completer) *Analyzer {
	return NewAnalyzer(nil, &stubExtractor{texts: texts}, completer, judge.Config{})
}

func session(benchmark string, comparisons ...string) entity.AnalysisSession {
	return entity.NewSession(benchmark, comparisons, entity.AnalysisOptions{})
}

func TestRunEndToEnd(t *testing.T) {
	completer := &stubCompleter{response: "合规。条款义务一致。"}
	a := newTestAnalyzer(map[string]string{
		"benchmark.txt": benchText,
		"contract.txt":  compText,
	}, completer)

	out, err := a.Run(context.Background(), session("benchmark.txt", "contract.txt"))
	require.NoError(t, err)

	require.Len(t, out.Reports, 1)
	assert.Empty(t, out.Errors)

	rep := out.Reports[0]
	assert.Equal(t, "benchmark.txt", rep.BenchmarkSource)
	assert.Equal(t, "contract.txt", rep.ComparisonSource)
	assert.Equal(t, 2, rep.Counts.Matched)
	assert.Equal(t, 2, rep.Counts.Compliant)
	assert.Equal(t, 2, out.JudgeCalls)
	assert.Equal(t, int64(2), completer.calls.Load())
	assert.False(t, out.FinishedAt.Before(out.StartedAt))
}

func TestRunBenchmarkFailureIsFatal(t *testing.T) {
	a := newTestAnalyzer(map[string]string{"contract.txt": compText}, nil)

	_, err := a.Run(context.Background(), session("missing.txt", "contract.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestRunComparisonFailureIsRecorded(t *testing.T) {
	a := newTestAnalyzer(map[string]string{
		"benchmark.txt": benchText,
		"good.txt":      compText,
	}, nil)

	out, err := a.Run(context.Background(), session("benchmark.txt", "bad.txt", "good.txt"))
	require.NoError(t, err)

	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], "bad.txt")
	require.Len(t, out.Reports, 1)
	assert.Equal(t, "good.txt", out.Reports[0].ComparisonSource)
}

func TestRunJudgmentDisabled(t *testing.T) {
	a := newTestAnalyzer(map[string]string{
		"benchmark.txt": benchText,
		"contract.txt":  compText,
	}, nil)

	out, err := a.Run(context.Background(), session("benchmark.txt", "contract.txt"))
	require.NoError(t, err)

	rep := out.Reports[0]
	assert.Equal(t, 2, rep.Counts.Matched)
	assert.Equal(t, 2, rep.Counts.Unknown)
	for _, jp := range rep.Judged {
		assert.Equal(t, constants.VerdictUnknown, jp.Verdict)
		assert.Equal(t, "judgment disabled", jp.Rationale)
	}
	assert.Zero(t, out.JudgeCalls)
}

func TestRunBudgetSharedAcrossDocuments(t *testing.T) {
	completer := &stubCompleter{response: "合规"}
	a := newTestAnalyzer(map[string]string{
		"benchmark.txt": benchText,
		"c1.txt":        compText,
		"c2.txt":        compText,
	}, completer)

	s := entity.NewSession("benchmark.txt", []string{"c1.txt", "c2.txt"}, entity.AnalysisOptions{
		MaxJudgedPairs: 3,
	})
	out, err := a.Run(context.Background(), s)
	require.NoError(t, err)

	// 2 pairs per document, 4 total, but only 3 collaborator calls allowed.
	assert.Equal(t, 3, out.JudgeCalls)
	assert.Equal(t, int64(3), completer.calls.Load())

	judgedTotal, unknown := 0, 0
	for _, rep := range out.Reports {
		judgedTotal += len(rep.Judged)
		unknown += rep.Counts.Unknown
	}
	assert.Equal(t, 4, judgedTotal, "the capped pair still appears in the report")
	assert.Equal(t, 1, unknown)
}

func TestRunCollaboratorFailureDegradesToUnknown(t *testing.T) {
	completer := &stubCompleter{err: errors.New("timeout")}
	a := newTestAnalyzer(map[string]string{
		"benchmark.txt": benchText,
		"contract.txt":  compText,
	}, completer)

	out, err := a.Run(context.Background(), session("benchmark.txt", "contract.txt"))
	require.NoError(t, err)

	rep := out.Reports[0]
	require.Len(t, rep.Judged, 2, "one collaborator failure never shrinks the judged list")
	for _, jp := range rep.Judged {
		assert.Equal(t, constants.VerdictUnknown, jp.Verdict)
		assert.Contains(t, jp.Rationale, "judgment unavailable")
	}
}

func TestRunConcurrentJudging(t *testing.T) {
	completer := &stubCompleter{response: "合规"}
	a := newTestAnalyzer(map[string]string{
		"benchmark.txt": benchText,
		"contract.txt":  compText,
	}, completer)

	s := entity.NewSession("benchmark.txt", []string{"contract.txt"}, entity.AnalysisOptions{
		JudgeWorkers: 4,
	})
	out, err := a.Run(context.Background(), s)
	require.NoError(t, err)

	rep := out.Reports[0]
	require.Len(t, rep.Judged, 2)
	// assembly order is by benchmark ordinal regardless of worker timing
	for i := 1; i < len(rep.Judged); i++ {
		assert.Less(t, rep.Judged[i-1].Pair.Benchmark.Ordinal, rep.Judged[i].Pair.Benchmark.Ordinal)
	}
}

func TestRunCanceledContext(t *testing.T) {
	a := newTestAnalyzer(map[string]string{
		"benchmark.txt": benchText,
		"contract.txt":  compText,
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := a.Run(ctx, session("benchmark.txt", "contract.txt"))
	require.NoError(t, err)

	assert.Empty(t, out.Reports)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], "canceled")
}

func TestRunClauseCap(t *testing.T) {
	a := newTestAnalyzer(map[string]string{
		"benchmark.txt": benchText,
		"contract.txt":  compText,
	}, nil)

	s := entity.NewSession("benchmark.txt", []string{"contract.txt"}, entity.AnalysisOptions{
		MaxClauses: 1,
	})
	out, err := a.Run(context.Background(), s)
	require.NoError(t, err)

	rep := out.Reports[0]
	assert.Equal(t, 1, rep.Counts.Matched)

	var capped bool
	for _, d := range rep.Diagnostics {
		if strings.Contains(d, "capped") {
			capped = true
		}
	}
	assert.True(t, capped, "clause cap must surface as a diagnostic")
}
