// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: compliance/v1/compliance.proto

package compliancepb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AnalysisOptions struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	MinSimilarity  float64                `protobuf:"fixed64,1,opt,name=min_similarity,json=minSimilarity,proto3" json:"min_similarity,omitempty"`     // 0 = default (0.35)
	Precision      string                 `protobuf:"bytes,2,opt,name=precision,proto3" json:"precision,omitempty"`                                    // LOOSE | MEDIUM | STRICT; empty = MEDIUM
	MaxClauses     int32                  `protobuf:"varint,3,opt,name=max_clauses,json=maxClauses,proto3" json:"max_clauses,omitempty"`               // per document; 0 = unlimited
	MaxJudgedPairs int32                  `protobuf:"varint,4,opt,name=max_judged_pairs,json=maxJudgedPairs,proto3" json:"max_judged_pairs,omitempty"` // judgment invocation cap; 0 = default (50)
	JudgeWorkers   int32                  `protobuf:"varint,5,opt,name=judge_workers,json=judgeWorkers,proto3" json:"judge_workers,omitempty"`         // 0/1 = sequential
	KeepPreamble   bool                   `protobuf:"varint,6,opt,name=keep_preamble,json=keepPreamble,proto3" json:"keep_preamble,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AnalysisOptions) Reset() {
	*x = AnalysisOptions{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalysisOptions) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalysisOptions) ProtoMessage() {}

func (x *AnalysisOptions) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalysisOptions.ProtoReflect.Descriptor instead.
func (*AnalysisOptions) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{0}
}

func (x *AnalysisOptions) GetMinSimilarity() float64 {
	if x != nil {
		return x.MinSimilarity
	}
	return 0
}

func (x *AnalysisOptions) GetPrecision() string {
	if x != nil {
		return x.Precision
	}
	return ""
}

func (x *AnalysisOptions) GetMaxClauses() int32 {
	if x != nil {
		return x.MaxClauses
	}
	return 0
}

func (x *AnalysisOptions) GetMaxJudgedPairs() int32 {
	if x != nil {
		return x.MaxJudgedPairs
	}
	return 0
}

func (x *AnalysisOptions) GetJudgeWorkers() int32 {
	if x != nil {
		return x.JudgeWorkers
	}
	return 0
}

func (x *AnalysisOptions) GetKeepPreamble() bool {
	if x != nil {
		return x.KeepPreamble
	}
	return false
}

type CreateRunRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	BenchmarkPath   string                 `protobuf:"bytes,1,opt,name=benchmark_path,json=benchmarkPath,proto3" json:"benchmark_path,omitempty"`
	ComparisonPaths []string               `protobuf:"bytes,2,rep,name=comparison_paths,json=comparisonPaths,proto3" json:"comparison_paths,omitempty"`
	Options         *AnalysisOptions       `protobuf:"bytes,3,opt,name=options,proto3" json:"options,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateRunRequest) Reset() {
	*x = CreateRunRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRunRequest) ProtoMessage() {}

func (x *CreateRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRunRequest.ProtoReflect.Descriptor instead.
func (*CreateRunRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{1}
}

func (x *CreateRunRequest) GetBenchmarkPath() string {
	if x != nil {
		return x.BenchmarkPath
	}
	return ""
}

func (x *CreateRunRequest) GetComparisonPaths() []string {
	if x != nil {
		return x.ComparisonPaths
	}
	return nil
}

func (x *CreateRunRequest) GetOptions() *AnalysisOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

type CreateRunResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRunResponse) Reset() {
	*x = CreateRunResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRunResponse) ProtoMessage() {}

func (x *CreateRunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRunResponse.ProtoReflect.Descriptor instead.
func (*CreateRunResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{2}
}

func (x *CreateRunResponse) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *CreateRunResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetRunRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRunRequest) Reset() {
	*x = GetRunRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRunRequest) ProtoMessage() {}

func (x *GetRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRunRequest.ProtoReflect.Descriptor instead.
func (*GetRunRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{3}
}

func (x *GetRunRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type RunSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	BenchmarkPath string                 `protobuf:"bytes,2,opt,name=benchmark_path,json=benchmarkPath,proto3" json:"benchmark_path,omitempty"`
	Documents     int32                  `protobuf:"varint,3,opt,name=documents,proto3" json:"documents,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	JudgeCalls    int32                  `protobuf:"varint,6,opt,name=judge_calls,json=judgeCalls,proto3" json:"judge_calls,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`    // RFC 3339
	FinishedAt    string                 `protobuf:"bytes,8,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC 3339; empty while running
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunSummary) Reset() {
	*x = RunSummary{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunSummary) ProtoMessage() {}

func (x *RunSummary) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunSummary.ProtoReflect.Descriptor instead.
func (*RunSummary) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{4}
}

func (x *RunSummary) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *RunSummary) GetBenchmarkPath() string {
	if x != nil {
		return x.BenchmarkPath
	}
	return ""
}

func (x *RunSummary) GetDocuments() int32 {
	if x != nil {
		return x.Documents
	}
	return 0
}

func (x *RunSummary) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *RunSummary) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *RunSummary) GetJudgeCalls() int32 {
	if x != nil {
		return x.JudgeCalls
	}
	return 0
}

func (x *RunSummary) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *RunSummary) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ClauseRef struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         string                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	Ordinal       int32                  `protobuf:"varint,2,opt,name=ordinal,proto3" json:"ordinal,omitempty"`
	Body          string                 `protobuf:"bytes,3,opt,name=body,proto3" json:"body,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClauseRef) Reset() {
	*x = ClauseRef{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClauseRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClauseRef) ProtoMessage() {}

func (x *ClauseRef) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClauseRef.ProtoReflect.Descriptor instead.
func (*ClauseRef) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{5}
}

func (x *ClauseRef) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *ClauseRef) GetOrdinal() int32 {
	if x != nil {
		return x.Ordinal
	}
	return 0
}

func (x *ClauseRef) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

type JudgedPair struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Benchmark     *ClauseRef             `protobuf:"bytes,1,opt,name=benchmark,proto3" json:"benchmark,omitempty"`
	Candidate     *ClauseRef             `protobuf:"bytes,2,opt,name=candidate,proto3" json:"candidate,omitempty"`
	Similarity    float64                `protobuf:"fixed64,3,opt,name=similarity,proto3" json:"similarity,omitempty"`
	MatchMethod   string                 `protobuf:"bytes,4,opt,name=match_method,json=matchMethod,proto3" json:"match_method,omitempty"` // label-equality | similarity
	Verdict       string                 `protobuf:"bytes,5,opt,name=verdict,proto3" json:"verdict,omitempty"`                            // COMPLIANT | NON_COMPLIANT | UNKNOWN
	Rationale     string                 `protobuf:"bytes,6,opt,name=rationale,proto3" json:"rationale,omitempty"`
	Score         float64                `protobuf:"fixed64,7,opt,name=score,proto3" json:"score,omitempty"` // only meaningful when has_score is set
	HasScore      bool                   `protobuf:"varint,8,opt,name=has_score,json=hasScore,proto3" json:"has_score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JudgedPair) Reset() {
	*x = JudgedPair{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JudgedPair) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JudgedPair) ProtoMessage() {}

func (x *JudgedPair) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JudgedPair.ProtoReflect.Descriptor instead.
func (*JudgedPair) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{6}
}

func (x *JudgedPair) GetBenchmark() *ClauseRef {
	if x != nil {
		return x.Benchmark
	}
	return nil
}

func (x *JudgedPair) GetCandidate() *ClauseRef {
	if x != nil {
		return x.Candidate
	}
	return nil
}

func (x *JudgedPair) GetSimilarity() float64 {
	if x != nil {
		return x.Similarity
	}
	return 0
}

func (x *JudgedPair) GetMatchMethod() string {
	if x != nil {
		return x.MatchMethod
	}
	return ""
}

func (x *JudgedPair) GetVerdict() string {
	if x != nil {
		return x.Verdict
	}
	return ""
}

func (x *JudgedPair) GetRationale() string {
	if x != nil {
		return x.Rationale
	}
	return ""
}

func (x *JudgedPair) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *JudgedPair) GetHasScore() bool {
	if x != nil {
		return x.HasScore
	}
	return false
}

type Report struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	ComparisonPath      string                 `protobuf:"bytes,1,opt,name=comparison_path,json=comparisonPath,proto3" json:"comparison_path,omitempty"`
	Matched             int32                  `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Compliant           int32                  `protobuf:"varint,3,opt,name=compliant,proto3" json:"compliant,omitempty"`
	NonCompliant        int32                  `protobuf:"varint,4,opt,name=non_compliant,json=nonCompliant,proto3" json:"non_compliant,omitempty"`
	Unknown             int32                  `protobuf:"varint,5,opt,name=unknown,proto3" json:"unknown,omitempty"`
	Judged              []*JudgedPair          `protobuf:"bytes,6,rep,name=judged,proto3" json:"judged,omitempty"`
	UnmatchedBenchmark  []*ClauseRef           `protobuf:"bytes,7,rep,name=unmatched_benchmark,json=unmatchedBenchmark,proto3" json:"unmatched_benchmark,omitempty"`
	UnmatchedCandidates []*ClauseRef           `protobuf:"bytes,8,rep,name=unmatched_candidates,json=unmatchedCandidates,proto3" json:"unmatched_candidates,omitempty"`
	Diagnostics         []string               `protobuf:"bytes,9,rep,name=diagnostics,proto3" json:"diagnostics,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Report) Reset() {
	*x = Report{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Report) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Report) ProtoMessage() {}

func (x *Report) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Report.ProtoReflect.Descriptor instead.
func (*Report) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{7}
}

func (x *Report) GetComparisonPath() string {
	if x != nil {
		return x.ComparisonPath
	}
	return ""
}

func (x *Report) GetMatched() int32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *Report) GetCompliant() int32 {
	if x != nil {
		return x.Compliant
	}
	return 0
}

func (x *Report) GetNonCompliant() int32 {
	if x != nil {
		return x.NonCompliant
	}
	return 0
}

func (x *Report) GetUnknown() int32 {
	if x != nil {
		return x.Unknown
	}
	return 0
}

func (x *Report) GetJudged() []*JudgedPair {
	if x != nil {
		return x.Judged
	}
	return nil
}

func (x *Report) GetUnmatchedBenchmark() []*ClauseRef {
	if x != nil {
		return x.UnmatchedBenchmark
	}
	return nil
}

func (x *Report) GetUnmatchedCandidates() []*ClauseRef {
	if x != nil {
		return x.UnmatchedCandidates
	}
	return nil
}

func (x *Report) GetDiagnostics() []string {
	if x != nil {
		return x.Diagnostics
	}
	return nil
}

type GetRunResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Run           *RunSummary            `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	Reports       []*Report              `protobuf:"bytes,2,rep,name=reports,proto3" json:"reports,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRunResponse) Reset() {
	*x = GetRunResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRunResponse) ProtoMessage() {}

func (x *GetRunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRunResponse.ProtoReflect.Descriptor instead.
func (*GetRunResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{8}
}

func (x *GetRunResponse) GetRun() *RunSummary {
	if x != nil {
		return x.Run
	}
	return nil
}

func (x *GetRunResponse) GetReports() []*Report {
	if x != nil {
		return x.Reports
	}
	return nil
}

type ListRunsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"` // 0 = server default
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRunsRequest) Reset() {
	*x = ListRunsRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRunsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRunsRequest) ProtoMessage() {}

func (x *ListRunsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRunsRequest.ProtoReflect.Descriptor instead.
func (*ListRunsRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{9}
}

func (x *ListRunsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListRunsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Runs          []*RunSummary          `protobuf:"bytes,1,rep,name=runs,proto3" json:"runs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRunsResponse) Reset() {
	*x = ListRunsResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRunsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRunsResponse) ProtoMessage() {}

func (x *ListRunsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRunsResponse.ProtoReflect.Descriptor instead.
func (*ListRunsResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{10}
}

func (x *ListRunsResponse) GetRuns() []*RunSummary {
	if x != nil {
		return x.Runs
	}
	return nil
}

type ExportReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{11}
}

func (x *ExportReportRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"` // XLSX workbook
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{12}
}

func (x *ExportReportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportReportResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_compliance_v1_compliance_proto protoreflect.FileDescriptor

const file_compliance_v1_compliance_proto_rawDesc = "" +
	"\n" +
	"\x1ecompliance/v1/compliance.proto\x12\rcompliance.v1\"\xeb\x01\n" +
	"\x0fAnalysisOptions\x12%\n" +
	"\x0emin_similarity\x18\x01 \x01(\x01R\rminSimilarity\x12\x1c\n" +
	"\tprecision\x18\x02 \x01(\tR\tprecision\x12\x1f\n" +
	"\vmax_clauses\x18\x03 \x01(\x05R\n" +
	"maxClauses\x12(\n" +
	"\x10max_judged_pairs\x18\x04 \x01(\x05R\x0emaxJudgedPairs\x12#\n" +
	"\rjudge_workers\x18\x05 \x01(\x05R\fjudgeWorkers\x12#\n" +
	"\rkeep_preamble\x18\x06 \x01(\bR\fkeepPreamble\"\x9e\x01\n" +
	"\x10CreateRunRequest\x12%\n" +
	"\x0ebenchmark_path\x18\x01 \x01(\tR\rbenchmarkPath\x12)\n" +
	"\x10comparison_paths\x18\x02 \x03(\tR\x0fcomparisonPaths\x128\n" +
	"\aoptions\x18\x03 \x01(\v2\x1e.compliance.v1.AnalysisOptionsR\aoptions\"B\n" +
	"\x11CreateRunResponse\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"&\n" +
	"\rGetRunRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"\x86\x02\n" +
	"\n" +
	"RunSummary\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12%\n" +
	"\x0ebenchmark_path\x18\x02 \x01(\tR\rbenchmarkPath\x12\x1c\n" +
	"\tdocuments\x18\x03 \x01(\x05R\tdocuments\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vjudge_calls\x18\x06 \x01(\x05R\n" +
	"judgeCalls\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1f\n" +
	"\vfinished_at\x18\b \x01(\tR\n" +
	"finishedAt\"O\n" +
	"\tClauseRef\x12\x14\n" +
	"\x05label\x18\x01 \x01(\tR\x05label\x12\x18\n" +
	"\aordinal\x18\x02 \x01(\x05R\aordinal\x12\x12\n" +
	"\x04body\x18\x03 \x01(\tR\x04body\"\xaa\x02\n" +
	"\n" +
	"JudgedPair\x126\n" +
	"\tbenchmark\x18\x01 \x01(\v2\x18.compliance.v1.ClauseRefR\tbenchmark\x126\n" +
	"\tcandidate\x18\x02 \x01(\v2\x18.compliance.v1.ClauseRefR\tcandidate\x12\x1e\n" +
	"\n" +
	"similarity\x18\x03 \x01(\x01R\n" +
	"similarity\x12!\n" +
	"\fmatch_method\x18\x04 \x01(\tR\vmatchMethod\x12\x18\n" +
	"\averdict\x18\x05 \x01(\tR\averdict\x12\x1c\n" +
	"\trationale\x18\x06 \x01(\tR\trationale\x12\x14\n" +
	"\x05score\x18\a \x01(\x01R\x05score\x12\x1b\n" +
	"\thas_score\x18\b \x01(\bR\bhasScore\"\x95\x03\n" +
	"\x06Report\x12'\n" +
	"\x0fcomparison_path\x18\x01 \x01(\tR\x0ecomparisonPath\x12\x18\n" +
	"\amatched\x18\x02 \x01(\x05R\amatched\x12\x1c\n" +
	"\tcompliant\x18\x03 \x01(\x05R\tcompliant\x12#\n" +
	"\rnon_compliant\x18\x04 \x01(\x05R\fnonCompliant\x12\x18\n" +
	"\aunknown\x18\x05 \x01(\x05R\aunknown\x121\n" +
	"\x06judged\x18\x06 \x03(\v2\x19.compliance.v1.JudgedPairR\x06judged\x12I\n" +
	"\x13unmatched_benchmark\x18\a \x03(\v2\x18.compliance.v1.ClauseRefR\x12unmatchedBenchmark\x12K\n" +
	"\x14unmatched_candidates\x18\b \x03(\v2\x18.compliance.v1.ClauseRefR\x13unmatchedCandidates\x12 \n" +
	"\vdiagnostics\x18\t \x03(\tR\vdiagnostics\"n\n" +
	"\x0eGetRunResponse\x12+\n" +
	"\x03run\x18\x01 \x01(\v2\x19.compliance.v1.RunSummaryR\x03run\x12/\n" +
	"\areports\x18\x02 \x03(\v2\x15.compliance.v1.ReportR\areports\"'\n" +
	"\x0fListRunsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"A\n" +
	"\x10ListRunsResponse\x12-\n" +
	"\x04runs\x18\x01 \x03(\v2\x19.compliance.v1.RunSummaryR\x04runs\",\n" +
	"\x13ExportReportRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"L\n" +
	"\x14ExportReportResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent2\xd0\x02\n" +
	"\x11ComplianceService\x12N\n" +
	"\tCreateRun\x12\x1f.compliance.v1.CreateRunRequest\x1a .compliance.v1.CreateRunResponse\x12E\n" +
	"\x06GetRun\x12\x1c.compliance.v1.GetRunRequest\x1a\x1d.compliance.v1.GetRunResponse\x12K\n" +
	"\bListRuns\x12\x1e.compliance.v1.ListRunsRequest\x1a\x1f.compliance.v1.ListRunsResponse\x12W\n" +
	"\fExportReport\x12\".compliance.v1.ExportReportRequest\x1a#.compliance.v1.ExportReportResponseBGZEgithub.com/liang-qiu/clausecheck/gen/proto/compliance/v1;compliancepbb\x06proto3"

var (
	file_compliance_v1_compliance_proto_rawDescOnce sync.Once
	file_compliance_v1_compliance_proto_rawDescData []byte
)

func file_compliance_v1_compliance_proto_rawDescGZIP() []byte {
	file_compliance_v1_compliance_proto_rawDescOnce.Do(func() {
		file_compliance_v1_compliance_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_compliance_v1_compliance_proto_rawDesc), len(file_compliance_v1_compliance_proto_rawDesc)))
	})
	return file_compliance_v1_compliance_proto_rawDescData
}

var file_compliance_v1_compliance_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_compliance_v1_compliance_proto_goTypes = []any{
	(*AnalysisOptions)(nil),      // 0: compliance.v1.AnalysisOptions
	(*CreateRunRequest)(nil),     // 1: compliance.v1.CreateRunRequest
	(*CreateRunResponse)(nil),    // 2: compliance.v1.CreateRunResponse
	(*GetRunRequest)(nil),        // 3: compliance.v1.GetRunRequest
	(*RunSummary)(nil),           // 4: compliance.v1.RunSummary
	(*ClauseRef)(nil),            // 5: compliance.v1.ClauseRef
	(*JudgedPair)(nil),           // 6: compliance.v1.JudgedPair
	(*Report)(nil),               // 7: compliance.v1.Report
	(*GetRunResponse)(nil),       // 8: compliance.v1.GetRunResponse
	(*ListRunsRequest)(nil),      // 9: compliance.v1.ListRunsRequest
	(*ListRunsResponse)(nil),     // 10: compliance.v1.ListRunsResponse
	(*ExportReportRequest)(nil),  // 11: compliance.v1.ExportReportRequest
	(*ExportReportResponse)(nil), // 12: compliance.v1.ExportReportResponse
}
var file_compliance_v1_compliance_proto_depIdxs = []int32{
	0,  // 0: compliance.v1.CreateRunRequest.options:type_name -> compliance.v1.AnalysisOptions
	5,  // 1: compliance.v1.JudgedPair.benchmark:type_name -> compliance.v1.ClauseRef
	5,  // 2: compliance.v1.JudgedPair.candidate:type_name -> compliance.v1.ClauseRef
	6,  // 3: compliance.v1.Report.judged:type_name -> compliance.v1.JudgedPair
	5,  // 4: compliance.v1.Report.unmatched_benchmark:type_name -> compliance.v1.ClauseRef
	5,  // 5: compliance.v1.Report.unmatched_candidates:type_name -> compliance.v1.ClauseRef
	4,  // 6: compliance.v1.GetRunResponse.run:type_name -> compliance.v1.RunSummary
	7,  // 7: compliance.v1.GetRunResponse.reports:type_name -> compliance.v1.Report
	4,  // 8: compliance.v1.ListRunsResponse.runs:type_name -> compliance.v1.RunSummary
	1,  // 9: compliance.v1.ComplianceService.CreateRun:input_type -> compliance.v1.CreateRunRequest
	3,  // 10: compliance.v1.ComplianceService.GetRun:input_type -> compliance.v1.GetRunRequest
	9,  // 11: compliance.v1.ComplianceService.ListRuns:input_type -> compliance.v1.ListRunsRequest
	11, // 12: compliance.v1.ComplianceService.ExportReport:input_type -> compliance.v1.ExportReportRequest
	2,  // 13: compliance.v1.ComplianceService.CreateRun:output_type -> compliance.v1.CreateRunResponse
	8,  // 14: compliance.v1.ComplianceService.GetRun:output_type -> compliance.v1.GetRunResponse
	10, // 15: compliance.v1.ComplianceService.ListRuns:output_type -> compliance.v1.ListRunsResponse
	12, // 16: compliance.v1.ComplianceService.ExportReport:output_type -> compliance.v1.ExportReportResponse
	13, // [13:17] is the sub-list for method output_type
	9,  // [9:13] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_compliance_v1_compliance_proto_init() }
func file_compliance_v1_compliance_proto_init() {
	if File_compliance_v1_compliance_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_compliance_v1_compliance_proto_rawDesc), len(file_compliance_v1_compliance_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_compliance_v1_compliance_proto_goTypes,
		DependencyIndexes: file_compliance_v1_compliance_proto_depIdxs,
		MessageInfos:      file_compliance_v1_compliance_proto_msgTypes,
	}.Build()
	File_compliance_v1_compliance_proto = out.File
	file_compliance_v1_compliance_proto_goTypes = nil
	file_compliance_v1_compliance_proto_depIdxs = nil
}
