package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/common"
	"github.com/liang-qiu/clausecheck/internal/entity"
	"github.com/liang-qiu/clausecheck/internal/export"
	"github.com/liang-qiu/clausecheck/internal/extract"
	"github.com/liang-qiu/clausecheck/internal/history"
	"github.com/liang-qiu/clausecheck/internal/judge"
	"github.com/liang-qiu/clausecheck/internal/judge/openai"
	"github.com/liang-qiu/clausecheck/internal/ocr"
	"github.com/liang-qiu/clausecheck/internal/pipeline"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		benchmark   = flag.String("benchmark", "", "benchmark document (required)")
		out         = flag.String("out", "", "output XLSX path (default: compliance.xlsx next to the benchmark)")
		precision   = flag.String("precision", "MEDIUM", "segmentation precision: LOOSE, MEDIUM or STRICT")
		minSim      = flag.Float64("min-similarity", 0.35, "similarity floor for clause matching")
		maxPairs    = flag.Int("max-pairs", 50, "judgment invocation cap per run")
		workers     = flag.Int("workers", 1, "concurrent judgment workers")
		keepPre     = flag.Bool("keep-preamble", false, "keep text before the first clause marker as clause zero")
		noJudge     = flag.Bool("no-judge", false, "skip compliance judgment, match only")
		historyPath = flag.String("history", "", "sqlite run-history file (default: ~/.clausecheck/history.db; empty string disables when the home dir is unknown)")
	)
	flag.Parse()

	if *benchmark == "" {
		printError("Error: --benchmark is required\n")
		os.Exit(1)
	}
	comparisons := flag.Args()
	if len(comparisons) == 0 {
		printError("Error: at least one comparison document is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*benchmark), "compliance.xlsx")
	}

	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load(filepath.Join(filepath.Dir(*benchmark), ".env"))
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()

	var completer judge.Completer
	if *noJudge || cfg.Judge.Disabled {
		logger.Info("judgment disabled, running match-only analysis")
	} else if cfg.Judge.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not configured, matched pairs will stay UNKNOWN")
	} else {
		completer = openai.NewClient(openai.Config{
			APIKey:      cfg.Judge.APIKey,
			BaseURL:     cfg.Judge.BaseURL,
			Model:       cfg.Judge.Model,
			Temperature: cfg.Judge.Temperature,
			MaxTokens:   cfg.Judge.MaxTokens,
			Timeout:     cfg.Judge.Timeout,
		}, logger)
		logger.Info("judgment client initialized", "model", cfg.Judge.Model)
	}

	extractor := extract.NewExtractor(ocr.NewExtractor(ocr.Config{
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		MinPageChars:  cfg.OCR.MinPageChars,
	}, logger), logger)

	analyzer := pipeline.NewAnalyzer(logger, extractor, completer, judge.Config{
		MaxInvocations: *maxPairs,
		Structured:     cfg.Judge.Structured,
	})

	session := entity.NewSession(*benchmark, comparisons, entity.AnalysisOptions{
		MinSimilarity:  *minSim,
		Precision:      constants.ParsePrecision(*precision),
		MaxClauses:     cfg.Analysis.MaxClauses,
		MaxJudgedPairs: *maxPairs,
		JudgeWorkers:   *workers,
		KeepPreamble:   *keepPre,
	})

	outcome, err := analyzer.Run(ctx, session)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	content, err := export.NewService(logger).ReportsXLSX(outcome.Reports)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, content, 0o644); err != nil {
		logger.Error("write output", "path", *out, "error", err)
		os.Exit(1)
	}

	recordHistory(ctx, *historyPath, outcome, logger)
	printSummary(outcome, *out)

	if len(outcome.Errors) > 0 {
		os.Exit(2)
	}
}

// recordHistory is best-effort: a failure to write local history never fails
// the run that just produced a report on disk.
func recordHistory(ctx context.Context, path string, outcome *pipeline.RunOutcome, logger *slog.Logger) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir := filepath.Join(home, ".clausecheck")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Warn("history dir", "error", err)
			return
		}
		path = filepath.Join(dir, "history.db")
	}
	store, err := history.Open(path)
	if err != nil {
		logger.Warn("open history", "path", path, "error", err)
		return
	}
	defer func() { _ = store.Close() }()
	if err := store.Record(ctx, outcome); err != nil {
		logger.Warn("record history", "error", err)
	}
}

func printSummary(outcome *pipeline.RunOutcome, outPath string) {
	fmt.Printf("analyzed %d document(s) against %s\n",
		len(outcome.Session.ComparisonPaths), outcome.Session.BenchmarkPath)
	for _, rep := range outcome.Reports {
		fmt.Printf("  %s: %d matched, %d compliant, %d non-compliant, %d unknown",
			rep.ComparisonSource, rep.Counts.Matched, rep.Counts.Compliant,
			rep.Counts.NonCompliant, rep.Counts.Unknown)
		if n := len(rep.UnmatchedBenchmark); n > 0 {
			fmt.Printf(", %d benchmark clause(s) uncovered", n)
		}
		fmt.Println()
	}
	for _, e := range outcome.Errors {
		printError("  error: %s\n", e)
	}
	fmt.Printf("judge calls: %d\n", outcome.JudgeCalls)
	fmt.Printf("report written to %s\n", outPath)
}
