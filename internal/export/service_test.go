package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/entity"
)

func sampleReport() entity.Report {
	score := 85.0
	return entity.Report{
		BenchmarkSource:  "benchmark.pdf",
		ComparisonSource: "contract.docx",
		GeneratedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Counts:           entity.ReportCounts{Matched: 2, Compliant: 1, NonCompliant: 1},
		Judged: []entity.JudgedPair{
			{
				Pair: entity.MatchCandidate{
					Benchmark:  entity.Clause{Label: "一", Body: "甲方应当按时付款", Ordinal: 0},
					Candidate:  entity.Clause{Label: "一", Body: "甲方应当分期付款", Ordinal: 0},
					Similarity: 1.0,
					Method:     entity.MatchByLabel,
				},
				Verdict:   constants.VerdictCompliant,
				Rationale: "付款义务一致",
				Score:     &score,
			},
			{
				Pair: entity.MatchCandidate{
					Benchmark:  entity.Clause{Label: "二", Body: "乙方应当按期交货", Ordinal: 1},
					Candidate:  entity.Clause{Body: "交货时间另行协商", Ordinal: 3},
					Similarity: 0.41,
					Method:     entity.MatchBySimilarity,
				},
				Verdict: constants.VerdictNonCompliant,
			},
		},
		UnmatchedBenchmark:  []entity.Clause{{Label: "三", Body: "违约责任条款", Ordinal: 2}},
		UnmatchedCandidates: []entity.Clause{{Body: "赠品条款", Ordinal: 7}},
		Diagnostics:         []string{"contract.docx: degraded segmentation"},
	}
}

func TestReportsXLSX(t *testing.T) {
	svc := NewService(nil)
	out, err := svc.ReportsXLSX([]entity.Report{sampleReport()})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Judged Pairs")
	assert.Contains(t, sheets, "Unmatched")

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "benchmark.pdf", summary[1][0])
	assert.Equal(t, "contract.docx", summary[1][1])
	assert.Equal(t, "2", summary[1][3])

	pairs, err := f.GetRows("Judged Pairs")
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, "一", pairs[1][1])
	assert.Equal(t, string(constants.VerdictCompliant), pairs[1][5])
	assert.Equal(t, "85", pairs[1][6])
	assert.Equal(t, "#4", pairs[2][2], "unlabeled clause shows its ordinal")

	missing, err := f.GetRows("Unmatched")
	require.NoError(t, err)
	require.Len(t, missing, 3)
	assert.Equal(t, "benchmark", missing[1][1])
	assert.Equal(t, "comparison", missing[2][1])
}

func TestReportsXLSXEmpty(t *testing.T) {
	svc := NewService(nil)
	out, err := svc.ReportsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Contains(t, f.GetSheetList(), "Summary")
}

func TestTruncateRuneSafe(t *testing.T) {
	long := strings.Repeat("条", 600)
	got := truncate(long, 500)
	assert.Equal(t, 500, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, "short", truncate("short", 500))
}
