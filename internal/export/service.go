// Package export renders assembled reports into an XLSX workbook artifact.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/liang-qiu/clausecheck/internal/entity"
)

// Service produces XLSX bytes for one analysis run's reports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const (
	summarySheet = "Summary"
	pairsSheet   = "Judged Pairs"
	missingSheet = "Unmatched"
)

// ReportsXLSX writes all reports of a run into one workbook: a summary sheet
// with per-document counts, one row per judged pair, and the unmatched
// clauses from both sides. Every field the report carries is findable in the
// workbook; the byte layout is not load-bearing.
func (s *Service) ReportsXLSX(reports []entity.Report) ([]byte, error) {
	start := time.Now()
	f := excelize.NewFile()

	if err := s.writeSummary(f, reports); err != nil {
		return nil, err
	}
	if err := s.writePairs(f, reports); err != nil {
		return nil, err
	}
	if err := s.writeUnmatched(f, reports); err != nil {
		return nil, err
	}

	// drop the default sheet
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}
	if idx, _ := f.GetSheetIndex(summarySheet); idx != -1 {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		"reports", len(reports),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeSummary(f *excelize.File, reports []entity.Report) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	headers := []string{
		"Benchmark", "Comparison", "Generated At",
		"Matched", "Compliant", "Non-Compliant", "Unknown",
		"Unmatched Benchmark", "Unmatched Comparison", "Diagnostics",
	}
	writeRow(f, summarySheet, 1, headers)

	for i, r := range reports {
		writeRow(f, summarySheet, i+2, []any{
			r.BenchmarkSource,
			r.ComparisonSource,
			r.GeneratedAt.Format(time.RFC3339),
			r.Counts.Matched,
			r.Counts.Compliant,
			r.Counts.NonCompliant,
			r.Counts.Unknown,
			len(r.UnmatchedBenchmark),
			len(r.UnmatchedCandidates),
			joinLimited(r.Diagnostics, 500),
		})
	}
	_ = f.SetColWidth(summarySheet, "A", "B", 40)
	_ = f.SetColWidth(summarySheet, "C", "C", 22)
	_ = f.SetColWidth(summarySheet, "J", "J", 60)
	return nil
}

func (s *Service) writePairs(f *excelize.File, reports []entity.Report) error {
	if _, err := f.NewSheet(pairsSheet); err != nil {
		return err
	}
	headers := []string{
		"Comparison Document", "Benchmark Label", "Comparison Label",
		"Match Method", "Similarity", "Verdict", "Score",
		"Benchmark Clause", "Comparison Clause", "Rationale",
	}
	writeRow(f, pairsSheet, 1, headers)

	row := 2
	for _, r := range reports {
		for _, jp := range r.Judged {
			score := ""
			if jp.Score != nil {
				score = fmt.Sprintf("%.0f", *jp.Score)
			}
			writeRow(f, pairsSheet, row, []any{
				r.ComparisonSource,
				jp.Pair.Benchmark.DisplayLabel(),
				jp.Pair.Candidate.DisplayLabel(),
				string(jp.Pair.Method),
				fmt.Sprintf("%.2f", jp.Pair.Similarity),
				string(jp.Verdict),
				score,
				truncate(jp.Pair.Benchmark.Body, 500),
				truncate(jp.Pair.Candidate.Body, 500),
				truncate(jp.Rationale, 800),
			})
			row++
		}
	}
	_ = f.SetColWidth(pairsSheet, "A", "A", 32)
	_ = f.SetColWidth(pairsSheet, "H", "J", 60)
	return nil
}

func (s *Service) writeUnmatched(f *excelize.File, reports []entity.Report) error {
	if _, err := f.NewSheet(missingSheet); err != nil {
		return err
	}
	writeRow(f, missingSheet, 1, []string{"Comparison Document", "Side", "Label", "Clause"})

	row := 2
	for _, r := range reports {
		for _, c := range r.UnmatchedBenchmark {
			writeRow(f, missingSheet, row, []any{r.ComparisonSource, "benchmark", c.DisplayLabel(), truncate(c.Body, 500)})
			row++
		}
		for _, c := range r.UnmatchedCandidates {
			writeRow(f, missingSheet, row, []any{r.ComparisonSource, "comparison", c.DisplayLabel(), truncate(c.Body, 500)})
			row++
		}
	}
	_ = f.SetColWidth(missingSheet, "A", "A", 32)
	_ = f.SetColWidth(missingSheet, "D", "D", 80)
	return nil
}

func writeRow[T any](f *excelize.File, sheet string, row int, values []T) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func joinLimited(parts []string, max int) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "; "
		}
		out += p
	}
	return truncate(out, max)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
