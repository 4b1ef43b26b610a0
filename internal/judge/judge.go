// Package judge formats matched clause pairs into judgment requests, parses
// the collaborator's answers, and classifies each pair.
package judge

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/entity"
)

// DefaultMaxInvocations caps collaborator calls per run to bound cost and
// latency. Pairs beyond the cap come back UNKNOWN, never dropped.
const DefaultMaxInvocations = 50

const capRationale = "judgment skipped: per-run invocation cap reached"

// Config holds thresholds and behavior flags for the adapter.
type Config struct {
	MaxInvocations int  // per-run collaborator call budget; 0 = DefaultMaxInvocations
	MaxClauseChars int  // per-clause prompt truncation; 0 = DefaultMaxClauseChars
	Structured     bool // request schema-validated JSON instead of free text
}

// Adapter turns MatchCandidates into JudgedPairs. One Adapter instance is one
// run's budget: the invocation counter is shared across concurrent workers.
type Adapter struct {
	completer Completer
	cfg       Config
	logger    *slog.Logger

	calls atomic.Int64
}

func NewAdapter(completer Completer, cfg Config, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxInvocations <= 0 {
		cfg.MaxInvocations = DefaultMaxInvocations
	}
	if cfg.MaxClauseChars <= 0 {
		cfg.MaxClauseChars = DefaultMaxClauseChars
	}
	return &Adapter{completer: completer, cfg: cfg, logger: logger}
}

// Invocations reports how many collaborator calls were actually made.
func (a *Adapter) Invocations() int { return int(a.calls.Load()) }

// Judge obtains a compliance judgment for one matched pair. Collaborator
// failures and unparseable answers both come back as UNKNOWN with the cause
// preserved in the rationale; the error is never propagated. Retries, if any,
// are a caller policy.
func (a *Adapter) Judge(ctx context.Context, pair entity.MatchCandidate) entity.JudgedPair {
	jp := entity.JudgedPair{Pair: pair, Verdict: constants.VerdictUnknown}

	// Budget check and claim are one atomic step so concurrent workers
	// cannot overrun the cap.
	if a.calls.Add(1) > int64(a.cfg.MaxInvocations) {
		a.calls.Add(-1)
		jp.Rationale = capRationale
		return jp
	}

	start := time.Now()
	req := Request{
		Prompt:       BuildPrompt(pair, a.cfg.MaxClauseChars),
		ResponseJSON: a.cfg.Structured,
	}
	text, err := a.completer.Complete(ctx, req)
	if err != nil {
		a.logger.Warn("judge.collaborator_failed",
			"benchmark_label", pair.Benchmark.DisplayLabel(),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		jp.Rationale = "judgment unavailable: " + err.Error()
		return jp
	}

	pv := a.parse(text)
	jp.Verdict = constants.VerdictUnknown
	if pv.Parsed {
		jp.Verdict = pv.Verdict
	}
	jp.Score = pv.Score
	jp.Rationale = strings.TrimSpace(pv.Raw)

	a.logger.Info("judge.ok",
		"benchmark_label", pair.Benchmark.DisplayLabel(),
		"candidate_label", pair.Candidate.DisplayLabel(),
		"verdict", jp.Verdict,
		"parsed", pv.Parsed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return jp
}

// parse handles both response modes. Structured answers are validated against
// the judgment schema first; anything that fails validation or decoding falls
// back to the plain-text verdict scan rather than being discarded.
func (a *Adapter) parse(text string) ParsedVerdict {
	if a.cfg.Structured {
		raw := []byte(strings.TrimSpace(text))
		if err := ValidateJSONAgainstSchema(ResponseSchema(), raw); err == nil {
			if pv, ok := ParseStructured(raw); ok {
				return pv
			}
		} else {
			a.logger.Warn("judge.structured_invalid", "error", err)
		}
	}
	return ParseVerdict(text)
}
