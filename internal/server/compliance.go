// Package server exposes the analysis pipeline over gRPC.
package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/async"
	"github.com/liang-qiu/clausecheck/internal/common"
	"github.com/liang-qiu/clausecheck/internal/entity"
	"github.com/liang-qiu/clausecheck/internal/export"
	"github.com/liang-qiu/clausecheck/internal/repository"

	compliancepb "github.com/liang-qiu/clausecheck/gen/proto/compliance/v1"
)

type ComplianceService struct {
	compliancepb.UnimplementedComplianceServiceServer
	runs     *repository.RunStore
	queue    *async.AnalyzerQueue
	exporter *export.Service
	logger   *zap.Logger
}

func NewComplianceService(runs *repository.RunStore, queue *async.AnalyzerQueue, exporter *export.Service, logger *zap.Logger) *ComplianceService {
	return &ComplianceService{runs: runs, queue: queue, exporter: exporter, logger: logger}
}

func (s *ComplianceService) CreateRun(ctx context.Context, req *compliancepb.CreateRunRequest) (*compliancepb.CreateRunResponse, error) {
	benchmark := strings.TrimSpace(req.GetBenchmarkPath())
	if benchmark == "" {
		return nil, common.InvalidArgumentError("benchmark_path is required")
	}
	var comparisons []string
	for _, p := range req.GetComparisonPaths() {
		if p = strings.TrimSpace(p); p != "" {
			comparisons = append(comparisons, p)
		}
	}
	if len(comparisons) == 0 {
		return nil, common.InvalidArgumentError("at least one comparison_path is required")
	}

	opts, err := optionsFromPB(req.GetOptions())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid options: %v", err)
	}

	session := entity.NewSession(benchmark, comparisons, opts)
	ctx = common.WithRequestID(ctx, session.ID.String())
	if err := s.runs.CreateRun(ctx, session); err != nil {
		s.logger.Warn("create run failed", zap.Error(err))
		return nil, common.InternalError("create run failed")
	}
	if err := s.queue.Enqueue(ctx, async.Job{Session: session}); err != nil {
		s.logger.Warn("enqueue failed", zap.String("run_id", session.ID.String()), zap.Error(err))
		return nil, common.InternalError("enqueue failed")
	}

	s.logger.Info("run queued",
		zap.String("run_id", session.ID.String()),
		zap.Int("documents", len(comparisons)),
	)
	return &compliancepb.CreateRunResponse{
		RunId:  session.ID.String(),
		Status: string(constants.RunStatusQueued),
	}, nil
}

func (s *ComplianceService) GetRun(ctx context.Context, req *compliancepb.GetRunRequest) (*compliancepb.GetRunResponse, error) {
	runID, err := parseRunID(req.GetRunId())
	if err != nil {
		return nil, err
	}

	run, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, s.storeError("get run", runID, err)
	}

	resp := &compliancepb.GetRunResponse{Run: toPBRunSummary(run)}
	if run.Status == constants.RunStatusDone {
		reports, err := s.runs.GetReports(ctx, runID)
		if err != nil {
			return nil, s.storeError("get reports", runID, err)
		}
		for _, rep := range reports {
			resp.Reports = append(resp.Reports, toPBReport(rep))
		}
	}
	return resp, nil
}

func (s *ComplianceService) ListRuns(ctx context.Context, req *compliancepb.ListRunsRequest) (*compliancepb.ListRunsResponse, error) {
	runs, err := s.runs.ListRuns(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("list runs failed", zap.Error(err))
		return nil, common.InternalError("list runs failed")
	}
	out := make([]*compliancepb.RunSummary, 0, len(runs))
	for i := range runs {
		out = append(out, toPBRunSummary(&runs[i]))
	}
	return &compliancepb.ListRunsResponse{Runs: out}, nil
}

func (s *ComplianceService) ExportReport(ctx context.Context, req *compliancepb.ExportReportRequest) (*compliancepb.ExportReportResponse, error) {
	runID, err := parseRunID(req.GetRunId())
	if err != nil {
		return nil, err
	}

	run, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, s.storeError("get run", runID, err)
	}
	if run.Status != constants.RunStatusDone {
		return nil, status.Errorf(codes.FailedPrecondition, "run is %s, not %s", run.Status, constants.RunStatusDone)
	}

	reports, err := s.runs.GetReports(ctx, runID)
	if err != nil {
		return nil, s.storeError("get reports", runID, err)
	}
	content, err := s.exporter.ReportsXLSX(reports)
	if err != nil {
		s.logger.Warn("export failed", zap.String("run_id", runID.String()), zap.Error(err))
		return nil, common.InternalError("export failed")
	}

	return &compliancepb.ExportReportResponse{
		Filename: fmt.Sprintf("compliance-%s.xlsx", runID.String()[:8]),
		Content:  content,
	}, nil
}

func (s *ComplianceService) storeError(op string, runID uuid.UUID, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NotFoundError(fmt.Sprintf("run %s not found", runID))
	}
	s.logger.Warn(op+" failed", zap.String("run_id", runID.String()), zap.Error(err))
	return common.InternalErrorf("%s failed", op)
}

func parseRunID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("run_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("run_id must be a UUID")
	}
	return id, nil
}

func optionsFromPB(pb *compliancepb.AnalysisOptions) (entity.AnalysisOptions, error) {
	var opts entity.AnalysisOptions
	if pb == nil {
		return opts, nil
	}
	if s := pb.GetMinSimilarity(); s < 0 || s > 1 {
		return opts, fmt.Errorf("min_similarity must be in [0,1], got %v", s)
	}
	opts.MinSimilarity = pb.GetMinSimilarity()
	if p := strings.TrimSpace(pb.GetPrecision()); p != "" {
		opts.Precision = constants.ParsePrecision(p)
	}
	opts.MaxClauses = int(pb.GetMaxClauses())
	opts.MaxJudgedPairs = int(pb.GetMaxJudgedPairs())
	opts.JudgeWorkers = int(pb.GetJudgeWorkers())
	opts.KeepPreamble = pb.GetKeepPreamble()
	return opts, nil
}

func toPBRunSummary(run *repository.Run) *compliancepb.RunSummary {
	out := &compliancepb.RunSummary{
		RunId:         run.ID.String(),
		BenchmarkPath: run.BenchmarkPath,
		Documents:     int32(len(run.ComparisonPaths)),
		Status:        string(run.Status),
		ErrorMessage:  run.ErrorMessage,
		JudgeCalls:    int32(run.JudgeCalls),
		CreatedAt:     run.CreatedAt.Format(time.RFC3339),
	}
	if run.FinishedAt != nil {
		out.FinishedAt = run.FinishedAt.Format(time.RFC3339)
	}
	return out
}

func toPBClause(c entity.Clause) *compliancepb.ClauseRef {
	return &compliancepb.ClauseRef{
		Label:   c.DisplayLabel(),
		Ordinal: int32(c.Ordinal),
		Body:    c.Body,
	}
}

func toPBReport(rep entity.Report) *compliancepb.Report {
	out := &compliancepb.Report{
		ComparisonPath: rep.ComparisonSource,
		Matched:        int32(rep.Counts.Matched),
		Compliant:      int32(rep.Counts.Compliant),
		NonCompliant:   int32(rep.Counts.NonCompliant),
		Unknown:        int32(rep.Counts.Unknown),
		Diagnostics:    rep.Diagnostics,
	}
	for _, jp := range rep.Judged {
		pb := &compliancepb.JudgedPair{
			Benchmark:   toPBClause(jp.Pair.Benchmark),
			Candidate:   toPBClause(jp.Pair.Candidate),
			Similarity:  jp.Pair.Similarity,
			MatchMethod: string(jp.Pair.Method),
			Verdict:     string(jp.Verdict),
			Rationale:   jp.Rationale,
		}
		if jp.Score != nil {
			pb.Score = *jp.Score
			pb.HasScore = true
		}
		out.Judged = append(out.Judged, pb)
	}
	for _, c := range rep.UnmatchedBenchmark {
		out.UnmatchedBenchmark = append(out.UnmatchedBenchmark, toPBClause(c))
	}
	for _, c := range rep.UnmatchedCandidates {
		out.UnmatchedCandidates = append(out.UnmatchedCandidates, toPBClause(c))
	}
	return out
}
