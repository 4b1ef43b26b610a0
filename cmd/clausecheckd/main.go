package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	compliancepb "github.com/liang-qiu/clausecheck/gen/proto/compliance/v1"
	"github.com/liang-qiu/clausecheck/internal/async"
	"github.com/liang-qiu/clausecheck/internal/common"
	"github.com/liang-qiu/clausecheck/internal/entity"
	"github.com/liang-qiu/clausecheck/internal/export"
	"github.com/liang-qiu/clausecheck/internal/extract"
	"github.com/liang-qiu/clausecheck/internal/ingest"
	"github.com/liang-qiu/clausecheck/internal/judge"
	"github.com/liang-qiu/clausecheck/internal/judge/openai"
	"github.com/liang-qiu/clausecheck/internal/ocr"
	"github.com/liang-qiu/clausecheck/internal/pipeline"
	"github.com/liang-qiu/clausecheck/internal/repository"
	"github.com/liang-qiu/clausecheck/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load("../../.env")
	}

	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()
	log := zlog.Sugar()

	slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Database.DSN == "" {
		log.Fatal("DB_URL env var is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := repository.Open(ctx, cfg.Database, slogger)
	if err != nil {
		log.Fatalf("creating DB pool: %v", err)
	}
	defer pool.Close()

	if err := repository.HealthCheck(ctx, pool, 5*time.Second); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	if err := repository.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Infow("DB ready")

	extractor := extract.NewExtractor(ocr.NewExtractor(ocr.Config{
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		MinPageChars:  cfg.OCR.MinPageChars,
	}, slogger), slogger)

	var completer judge.Completer
	if !cfg.Judge.Disabled {
		completer = openai.NewClient(openai.Config{
			APIKey:      cfg.Judge.APIKey,
			BaseURL:     cfg.Judge.BaseURL,
			Model:       cfg.Judge.Model,
			Temperature: cfg.Judge.Temperature,
			MaxTokens:   cfg.Judge.MaxTokens,
			Timeout:     cfg.Judge.Timeout,
		}, slogger)
	}

	analyzer := pipeline.NewAnalyzer(slogger, extractor, completer, judge.Config{
		MaxInvocations: cfg.Judge.MaxInvocations,
		Structured:     cfg.Judge.Structured,
	})

	runs := repository.NewRunStore(pool)
	queue := async.NewAnalyzerQueue(analyzer, repository.NewRunSink(runs, slogger), slogger,
		async.WithWorkers(2),
		async.WithQueueSize(128),
		async.WithRunTimeout(30*time.Minute),
	)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewComplianceService(runs, queue, export.NewService(slogger), zlog)
	compliancepb.RegisterComplianceServiceServer(grpcServer, svc)

	if cfg.Watch.Root != "" {
		if cfg.Watch.BenchmarkPath == "" {
			log.Fatal("WATCH_BENCHMARK is required when WATCH_ROOT is set")
		}
		startDropWatcher(ctx, cfg, queue, runs, log)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	queue.Shutdown(shutdownCtx)
	cancel()
	grpcServer.GracefulStop()
}

// startDropWatcher queues one single-document session per file dropped under
// the watch root, always against the configured benchmark.
func startDropWatcher(ctx context.Context, cfg *common.Config, queue *async.AnalyzerQueue, runs *repository.RunStore, log *zap.SugaredLogger) {
	benchmark, err := filepath.Abs(cfg.Watch.BenchmarkPath)
	if err != nil {
		log.Fatalf("watch benchmark: %v", err)
	}

	paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{cfg.Watch.Root},
		Debounce: cfg.Watch.Debounce,
	})
	if err != nil {
		log.Fatalf("watcher: %v", err)
	}
	log.Infow("watching drop directory", "root", cfg.Watch.Root, "benchmark", benchmark)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-errs:
				if ok {
					log.Warnw("watcher error", "error", err)
				}
			case path, ok := <-paths:
				if !ok {
					return
				}
				if path == benchmark {
					continue
				}
				session := entity.NewSession(benchmark, []string{path}, entity.AnalysisOptions{
					MinSimilarity:  cfg.Analysis.MinSimilarity,
					Precision:      cfg.Analysis.Precision,
					MaxClauses:     cfg.Analysis.MaxClauses,
					MaxJudgedPairs: cfg.Analysis.MaxJudgedPairs,
					JudgeWorkers:   cfg.Analysis.JudgeWorkers,
					KeepPreamble:   cfg.Analysis.KeepPreamble,
				})
				if err := runs.CreateRun(ctx, session); err != nil {
					log.Warnw("record dropped-file run", "path", path, "error", err)
					continue
				}
				_ = queue.Enqueue(ctx, async.Job{Session: session})
			}
		}
	}()
}
